package orders_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
	"github.com/ISSA5922/ambertek-export/orders"
)

type fakeCatalog struct {
	products map[uint]*models.Product
}

func (f *fakeCatalog) FindByID(id uint) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return product, nil
}

type fakeStore struct {
	created    []*models.Order
	seen       map[string]bool
	failWith   error
	duplicates int
	updates    [][]string
}

func (f *fakeStore) Create(order *models.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.duplicates > 0 {
		f.duplicates--
		return orders.ErrDuplicateOrderNumber
	}
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	if f.seen[order.OrderNumber] {
		return orders.ErrDuplicateOrderNumber
	}
	f.seen[order.OrderNumber] = true

	order.ID = uint(len(f.created) + 1)
	for i := range order.Items {
		order.Items[i].ID = uint(i + 1)
		order.Items[i].OrderID = order.ID
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeStore) UpdateNotificationState(order *models.Order, fields ...string) error {
	f.updates = append(f.updates, fields)
	return nil
}

func product(id uint, name string, price int64) *models.Product {
	return &models.Product{ID: id, Name: name, Price: decimal.NewFromInt(price), Available: true}
}

func validInput() orders.PlaceOrderInput {
	return orders.PlaceOrderInput{
		CustomerName:    "Asha Mwinyi",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "+255700000001",
		CustomerAddress: "12 Uhuru Street",
		CustomerCity:    "Dar es Salaam",
		CustomerRegion:  "Dar es Salaam",
		PaymentMethod:   models.PaymentCashOnDelivery,
		Locale:          i18n.English,
	}
}

func addLine(carts *cart.Store, sid, productID string, qty int) {
	carts.Put(sid, productID, qty, cart.Snapshot{Name: "snap"})
}

func TestPlaceOrderTotalsAndItems(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{
		7: product(7, "Solar Panel 100W", 15000),
	}}
	store := &fakeStore{}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 2)

	asm := orders.NewAssembler(cat, store, carts)
	result, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	order := result.Order
	assert.Equal(t, "30000", order.TotalAmount.String())
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(7), order.Items[0].ProductID)
	assert.Equal(t, "Solar Panel 100W", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "15000", order.Items[0].Price.String())
	assert.Equal(t, "30000", order.Items[0].ItemTotal().String())
	assert.Empty(t, result.Dropped)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.PaymentStatus)
}

func TestPlaceOrderDropsDeletedProducts(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{
		7: product(7, "Solar Panel 100W", 15000),
	}}
	store := &fakeStore{}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)
	addLine(carts, "s1", "9", 3) // deleted before checkout

	asm := orders.NewAssembler(cat, store, carts)
	result, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)

	assert.Equal(t, []string{"9"}, result.Dropped)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "15000", result.Order.TotalAmount.String())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := &fakeStore{}
	asm := orders.NewAssembler(&fakeCatalog{}, store, cart.NewStore())

	_, err := asm.PlaceOrder("nobody", validInput())

	var emptyCart *orders.EmptyCartError
	require.ErrorAs(t, err, &emptyCart)
	assert.Empty(t, store.created)
}

func TestPlaceOrderValidationListsEveryMissingField(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	store := &fakeStore{}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	input := validInput()
	input.CustomerPhone = "   "
	input.CustomerAddress = ""

	asm := orders.NewAssembler(cat, store, carts)
	_, err := asm.PlaceOrder("s1", input)

	var validation *orders.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"customer_phone", "customer_address"}, validation.Fields)
	assert.Empty(t, store.created)
	assert.Len(t, carts.Get("s1"), 1, "cart must be untouched on validation failure")
}

func TestPlaceOrderClearsCart(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)
	addLine(carts, "s2", "7", 5) // other session stays

	asm := orders.NewAssembler(cat, &fakeStore{}, carts)
	_, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)

	assert.Empty(t, carts.Get("s1"))
	assert.Len(t, carts.Get("s2"), 1)
}

func TestPlaceOrderStorageFailureKeepsCart(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	store := &fakeStore{failWith: errors.New("connection refused")}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	hookRan := false
	asm := orders.NewAssembler(cat, store, carts,
		func(*models.Order, []models.OrderItem, i18n.Locale) { hookRan = true })

	_, err := asm.PlaceOrder("s1", validInput())

	var persistence *orders.OrderPersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Len(t, carts.Get("s1"), 1, "cart must survive a storage failure")
	assert.False(t, hookRan, "no notifications on a failed order")
}

func TestPlaceOrderRetriesDuplicateNumbers(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	store := &fakeStore{duplicates: 2}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	asm := orders.NewAssembler(cat, store, carts)
	result, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Order.OrderNumber)
	require.Len(t, store.created, 1)
}

func TestPlaceOrderExhaustsNumberRetries(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	store := &fakeStore{duplicates: 3}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	asm := orders.NewAssembler(cat, store, carts)
	_, err := asm.PlaceOrder("s1", validInput())

	var persistence *orders.OrderPersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.ErrorIs(t, err, orders.ErrDuplicateOrderNumber)
	assert.Len(t, carts.Get("s1"), 1)
}

func TestPlaceOrderHookPanicIsContained(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	secondHookRan := false
	asm := orders.NewAssembler(cat, &fakeStore{}, carts,
		func(*models.Order, []models.OrderItem, i18n.Locale) { panic("smtp exploded") },
		func(*models.Order, []models.OrderItem, i18n.Locale) { secondHookRan = true },
	)

	result, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)
	assert.NotNil(t, result.Order)
	assert.True(t, secondHookRan, "hooks are isolated from each other")
}

func TestPlaceOrderEstimatedDelivery(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	asm := orders.NewAssembler(cat, &fakeStore{}, carts)
	result, err := asm.PlaceOrder("s1", validInput())
	require.NoError(t, err)

	require.NotNil(t, result.Order.EstimatedDelivery)
	expected := time.Now().UTC().AddDate(0, 0, 3)
	assert.WithinDuration(t, expected, *result.Order.EstimatedDelivery, time.Minute)
}

func TestPlaceOrderUnknownPaymentMethodDefaultsToCOD(t *testing.T) {
	cat := &fakeCatalog{products: map[uint]*models.Product{7: product(7, "Panel", 15000)}}
	carts := cart.NewStore()
	addLine(carts, "s1", "7", 1)

	input := validInput()
	input.PaymentMethod = models.PaymentMethod("bitcoin")

	asm := orders.NewAssembler(cat, &fakeStore{}, carts)
	result, err := asm.PlaceOrder("s1", input)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCashOnDelivery, result.Order.PaymentMethod)
}
