package orderControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/middleware"
	"github.com/ISSA5922/ambertek-export/models"
	"github.com/ISSA5922/ambertek-export/orders"
)

type placeOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	CustomerCity    string `json:"customer_city"`
	CustomerRegion  string `json:"customer_region"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

// POST /user/orders
func PlaceOrderHandler(asm *orders.Assembler) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)

		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input := orders.PlaceOrderInput{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			CustomerCity:    req.CustomerCity,
			CustomerRegion:  req.CustomerRegion,
			PaymentMethod:   models.PaymentMethod(req.PaymentMethod),
			Notes:           req.Notes,
			Locale:          loc,
		}
		if userID, ok := middleware.UserID(c); ok {
			input.UserID = &userID
		}

		result, err := asm.PlaceOrder(middleware.SessionID(c), input)
		if err != nil {
			var emptyCart *orders.EmptyCartError
			var validation *orders.ValidationError
			var persistence *orders.OrderPersistenceError
			switch {
			case errors.As(err, &emptyCart):
				c.JSON(http.StatusBadRequest, gin.H{
					"error":    i18n.T(loc, "cart.empty"),
					"redirect": "/user/cart",
				})
			case errors.As(err, &validation):
				c.JSON(http.StatusBadRequest, gin.H{
					"error":          i18n.T(loc, "checkout.missing_fields"),
					"missing_fields": validation.Fields,
				})
			case errors.As(err, &persistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(loc, "order.failed")})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(loc, "order.failed")})
			}
			return
		}

		resp := gin.H{
			"message": fmt.Sprintf(i18n.T(loc, "order.placed"), result.Order.OrderNumber),
			"order":   result.Order,
		}
		if len(result.Dropped) > 0 {
			resp["dropped"] = result.Dropped
			resp["warning"] = i18n.T(loc, "order.dropped_items")
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GET /user/orders/:orderID
func OrderConfirmation(store *orders.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		order, err := store.ByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if userID, ok := middleware.UserID(c); !ok || order.UserID == nil || *order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /user/orders
func MyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var list []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/track/:orderNumber
//
// Public order tracking by order number.
func TrackOrder(store *orders.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := middleware.Locale(c)
		number := c.Param("orderNumber")

		order, err := store.ByNumber(number)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf(i18n.T(loc, "order.not_found"), number),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order_number":       order.OrderNumber,
			"status":             order.Status,
			"payment_status":     order.PaymentStatus,
			"total_amount":       order.TotalAmount,
			"estimated_delivery": order.EstimatedDelivery,
			"created_at":         order.CreatedAt,
			"items":              order.Items,
		})
	}
}
