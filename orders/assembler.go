// Package orders contains the cart-to-order transaction: it validates the
// session cart and the submitted contact fields, reprices every line
// against the live catalog, persists the order atomically, clears the cart
// and fires the post-commit hooks that carry notification side effects.
package orders

import (
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
)

// Orders are promised within three days of placement.
const deliveryOffsetDays = 3

// How many fresh order numbers to try when the unique index rejects one.
const maxOrderNumberAttempts = 3

// Catalog resolves product IDs at checkout time. Lines whose product no
// longer resolves are dropped from the order, not failed.
type Catalog interface {
	FindByID(id uint) (*models.Product, error)
}

// Carts is the slice of the cart store the assembler needs: read the
// session's lines, and clear them wholesale once the order commits.
type Carts interface {
	Get(sessionID string) map[string]cart.Entry
	Clear(sessionID string)
}

// PostCommitHook runs after the order transaction has committed. Hooks
// carry side effects (emails, SMS, live feeds) and must never influence the
// outcome of order placement; errors and panics stay inside the hook.
type PostCommitHook func(order *models.Order, items []models.OrderItem, loc i18n.Locale)

// PlaceOrderInput is the submitted checkout form.
type PlaceOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	CustomerRegion  string
	PaymentMethod   models.PaymentMethod
	Notes           string
	UserID          *uint
	Locale          i18n.Locale
}

// Result is a successful placement: the persisted order plus the product
// IDs that were in the cart but no longer in the catalog, so the caller can
// warn the user.
type Result struct {
	Order   *models.Order `json:"order"`
	Dropped []string      `json:"dropped,omitempty"`
}

type Assembler struct {
	catalog Catalog
	store   Store
	carts   Carts
	hooks   []PostCommitHook
}

func NewAssembler(cat Catalog, store Store, carts Carts, hooks ...PostCommitHook) *Assembler {
	return &Assembler{catalog: cat, store: store, carts: carts, hooks: hooks}
}

// PlaceOrder turns the session's cart plus the submitted contact fields
// into a persisted order.
//
// Failure policy: an empty cart or blank required fields fail before
// anything is written; a storage failure fails with the cart untouched and
// no notifications sent. On success the cart is cleared wholesale and the
// post-commit hooks run, each isolated from the others.
func (a *Assembler) PlaceOrder(sessionID string, in PlaceOrderInput) (*Result, error) {
	entries := a.carts.Get(sessionID)
	if len(entries) == 0 {
		return nil, &EmptyCartError{}
	}

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerAddress = strings.TrimSpace(in.CustomerAddress)
	in.CustomerCity = strings.TrimSpace(in.CustomerCity)
	in.CustomerRegion = strings.TrimSpace(in.CustomerRegion)
	in.Notes = strings.TrimSpace(in.Notes)

	if missing := missingFields(in); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	items, total, dropped, err := a.priceCart(entries)
	if err != nil {
		return nil, &OrderPersistenceError{Err: err}
	}

	estimated := time.Now().UTC().AddDate(0, 0, deliveryOffsetDays)
	order := &models.Order{
		UserID:            in.UserID,
		CustomerName:      in.CustomerName,
		CustomerEmail:     in.CustomerEmail,
		CustomerPhone:     in.CustomerPhone,
		CustomerAddress:   in.CustomerAddress,
		CustomerCity:      in.CustomerCity,
		CustomerRegion:    in.CustomerRegion,
		TotalAmount:       total,
		PaymentMethod:     paymentMethodOrDefault(in.PaymentMethod),
		PaymentStatus:     false,
		Status:            models.OrderStatusPending,
		Items:             items,
		Notes:             in.Notes,
		EstimatedDelivery: &estimated,
	}

	if err := a.createWithFreshNumbers(order); err != nil {
		return nil, err
	}
	log.Printf("order %s created (id=%d, total=%s, items=%d, dropped=%d)",
		order.OrderNumber, order.ID, order.TotalAmount.StringFixed(2), len(order.Items), len(dropped))

	a.carts.Clear(sessionID)
	a.runHooks(order, order.Items, in.Locale)

	return &Result{Order: order, Dropped: dropped}, nil
}

// priceCart re-resolves every cart line against the live catalog. Lines
// whose product is gone (or whose key is not a product ID) are dropped.
func (a *Assembler) priceCart(entries map[string]cart.Entry) ([]models.OrderItem, decimal.Decimal, []string, error) {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseUint(ids[i], 10, 32)
		b, errB := strconv.ParseUint(ids[j], 10, 32)
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	total := decimal.Zero
	var items []models.OrderItem
	var dropped []string

	for _, id := range ids {
		entry := entries[id]
		pid, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			dropped = append(dropped, id)
			continue
		}
		product, err := a.catalog.FindByID(uint(pid))
		if errors.Is(err, catalog.ErrNotFound) {
			dropped = append(dropped, id)
			continue
		}
		if err != nil {
			return nil, decimal.Zero, nil, err
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    entry.Quantity,
			Price:       product.Price,
		})
	}
	return items, total, dropped, nil
}

// createWithFreshNumbers persists the order, regenerating the order number
// on a unique-index collision up to maxOrderNumberAttempts times.
func (a *Assembler) createWithFreshNumbers(order *models.Order) error {
	var err error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
		order.OrderNumber = NewOrderNumber(time.Now())

		if err = a.store.Create(order); err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicateOrderNumber) {
			return &OrderPersistenceError{Err: err}
		}
		log.Printf("order number %s collided, regenerating (attempt %d)", order.OrderNumber, attempt+1)
	}
	return &OrderPersistenceError{Err: err}
}

func (a *Assembler) runHooks(order *models.Order, items []models.OrderItem, loc i18n.Locale) {
	for _, hook := range a.hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("post-commit hook panicked for order %s: %v", order.OrderNumber, r)
				}
			}()
			hook(order, items, loc)
		}()
	}
}

func missingFields(in PlaceOrderInput) []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"customer_name", in.CustomerName},
		{"customer_email", in.CustomerEmail},
		{"customer_phone", in.CustomerPhone},
		{"customer_address", in.CustomerAddress},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func paymentMethodOrDefault(m models.PaymentMethod) models.PaymentMethod {
	switch m {
	case models.PaymentCashOnDelivery, models.PaymentMobileMoney, models.PaymentBankTransfer:
		return m
	}
	return models.PaymentCashOnDelivery
}
