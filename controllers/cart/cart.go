package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/middleware"
)

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// cartLine is one rendered cart row: the stored snapshot plus the live
// catalog price the order would actually use.
type cartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

// GET /user/cart
func GetCart(cat *catalog.Store, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := middleware.SessionID(c)
		lines, total, itemsCount := renderCart(cat, store, sid)
		c.JSON(http.StatusOK, gin.H{
			"items":       lines,
			"cart_total":  total,
			"items_count": itemsCount,
			"cart_count":  len(lines),
		})
	}
}

// POST /user/cart/:product_id
func AddToCart(cat *catalog.Store, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		quantity := 1
		var input quantityInput
		if err := c.ShouldBindJSON(&input); err == nil && input.Quantity > 0 {
			quantity = input.Quantity
		}

		product, err := cat.FindByID(uint(id))
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		sid := middleware.SessionID(c)
		key := strconv.FormatUint(uint64(product.ID), 10)
		existing := store.Get(sid)
		_, updated := existing[key]

		store.Put(sid, key, quantity, cart.Snapshot{
			Name:  product.Name,
			Price: product.Price,
			Image: product.Image,
			Slug:  product.Slug,
		})

		msgKey := "cart.added"
		if updated {
			msgKey = "cart.updated"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     fmt.Sprintf(i18n.T(loc, msgKey), product.Name),
			"cart_count":  len(store.Get(sid)),
			"items_count": store.Count(sid),
		})
	}
}

// PUT /user/cart/:product_id
func UpdateCartItem(cat *catalog.Store, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sid := middleware.SessionID(c)
		store.SetQuantity(sid, c.Param("product_id"), input.Quantity)

		lines, total, itemsCount := renderCart(cat, store, sid)
		c.JSON(http.StatusOK, gin.H{
			"items":       lines,
			"cart_total":  total,
			"items_count": itemsCount,
			"cart_count":  len(lines),
		})
	}
}

// DELETE /user/cart/:product_id
func RemoveFromCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)
		sid := middleware.SessionID(c)
		productID := c.Param("product_id")

		entry, ok := store.Get(sid)[productID]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		store.Remove(sid, productID)
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf(i18n.T(loc, "cart.removed"), entry.Name),
		})
	}
}

// DELETE /user/cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)
		store.Clear(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"message": i18n.T(loc, "cart.cleared")})
	}
}

// renderCart reads the session's cart with live catalog prices, lazily
// pruning lines whose product no longer exists.
func renderCart(cat *catalog.Store, store *cart.Store, sessionID string) ([]cartLine, decimal.Decimal, int) {
	entries := store.Get(sessionID)

	lines := make([]cartLine, 0, len(entries))
	total := decimal.Zero
	itemsCount := 0

	for id, entry := range entries {
		pid, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			store.Remove(sessionID, id)
			continue
		}
		product, err := cat.FindByID(uint(pid))
		if errors.Is(err, catalog.ErrNotFound) {
			store.Remove(sessionID, id)
			continue
		}
		if err != nil {
			// Transient lookup failure: keep the line, render the snapshot.
			product = nil
		}

		line := cartLine{
			ProductID: id,
			Name:      entry.Name,
			Slug:      entry.Slug,
			Image:     entry.Image,
			Quantity:  entry.Quantity,
			Price:     entry.Price,
		}
		if product != nil {
			line.Name = product.Name
			line.Price = product.Price
		}
		line.ItemTotal = line.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))

		total = total.Add(line.ItemTotal)
		itemsCount += entry.Quantity
		lines = append(lines, line)
	}
	return lines, total, itemsCount
}
