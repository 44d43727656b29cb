package notify_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
	"github.com/ISSA5922/ambertek-export/notify"
)

func sampleOrder() (*models.Order, []models.OrderItem) {
	delivery := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	order := &models.Order{
		OrderNumber:       "ORD-20260901-A1B2",
		CustomerName:      "Asha Mwinyi",
		CustomerEmail:     "asha@example.com",
		CustomerPhone:     "+255700000001",
		CustomerAddress:   "12 Uhuru Street",
		CustomerCity:      "Dar es Salaam",
		CustomerRegion:    "Dar es Salaam",
		TotalAmount:       decimal.NewFromInt(110000),
		PaymentMethod:     models.PaymentMobileMoney,
		Status:            models.OrderStatusPending,
		CreatedAt:         time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EstimatedDelivery: &delivery,
	}
	items := []models.OrderItem{
		{ProductName: "Solar Panel 100W", Quantity: 2, Price: decimal.NewFromInt(15000)},
		{ProductName: "Battery 12V", Quantity: 1, Price: decimal.NewFromInt(80000)},
	}
	return order, items
}

func TestFormatTZS(t *testing.T) {
	assert.Equal(t, "500", notify.FormatTZS(decimal.NewFromInt(500)))
	assert.Equal(t, "30,000", notify.FormatTZS(decimal.NewFromInt(30000)))
	assert.Equal(t, "1,234,567", notify.FormatTZS(decimal.NewFromInt(1234567)))
	assert.Equal(t, "1,234,568", notify.FormatTZS(decimal.NewFromFloat(1234567.89)))
}

func TestComposeOrderMessagesEnglish(t *testing.T) {
	order, items := sampleOrder()
	msgs := notify.ComposeOrderMessages(order, items, i18n.English)

	assert.Contains(t, msgs.CustomerSMS, "Thank you Asha Mwinyi!")
	assert.Contains(t, msgs.CustomerSMS, "Order #ORD-20260901-A1B2 received.")
	assert.Contains(t, msgs.CustomerSMS, "Total: TZS 110,000")
	assert.Contains(t, msgs.CustomerSMS, "Payment: Mobile Money")

	assert.Contains(t, msgs.CustomerWhatsApp, "*New Order Placed!*")
	assert.Contains(t, msgs.CustomerWhatsApp, "• Solar Panel 100W x2 - TZS 30,000")
	assert.Contains(t, msgs.CustomerWhatsApp, "• Battery 12V x1 - TZS 80,000")
	assert.Contains(t, msgs.CustomerWhatsApp, "*Grand Total: TZS 110,000*")

	assert.Contains(t, msgs.AdminSMS, "New Order!")
	assert.Contains(t, msgs.AdminSMS, "Customer: Asha Mwinyi")
}

func TestComposeOrderMessagesSwahili(t *testing.T) {
	order, items := sampleOrder()
	msgs := notify.ComposeOrderMessages(order, items, i18n.Swahili)

	assert.Contains(t, msgs.CustomerSMS, "Ahsante Asha Mwinyi!")
	assert.Contains(t, msgs.CustomerSMS, "Oda #ORD-20260901-A1B2 imepokelewa.")
	assert.Contains(t, msgs.CustomerSMS, "Jumla: TZS 110,000")
	assert.Contains(t, msgs.CustomerWhatsApp, "*Oda Mpya Imewekwa!*")
	assert.Contains(t, msgs.AdminSMS, "Oda Mpya!")
}

func TestComposeOrderMessagesUnknownLocaleFallsBackToEnglish(t *testing.T) {
	order, items := sampleOrder()
	msgs := notify.ComposeOrderMessages(order, items, i18n.Locale("fr"))
	assert.Contains(t, msgs.CustomerSMS, "Thank you Asha Mwinyi!")
}

func TestConfirmationEmailBody(t *testing.T) {
	order, items := sampleOrder()
	body := notify.ConfirmationEmailBody(order, items)

	assert.Contains(t, body, "Order Confirmation #ORD-20260901-A1B2")
	assert.Contains(t, body, "Dear Asha Mwinyi,")
	assert.Contains(t, body, "Total Amount: TZS 110,000")
	assert.Contains(t, body, "- Solar Panel 100W x 2: TZS 30,000")
	assert.Contains(t, body, "Estimated Delivery: September 4, 2026")
	assert.Contains(t, body, "Status: Pending")
}

func TestAdminEmailBody(t *testing.T) {
	order, items := sampleOrder()
	order.Notes = ""
	body := notify.AdminEmailBody(order, items)

	assert.Contains(t, body, "NEW ORDER NOTIFICATION")
	assert.Contains(t, body, "Order #ORD-20260901-A1B2")
	assert.Contains(t, body, "No notes provided")
	assert.Contains(t, body, "- Battery 12V x 1: TZS 80,000")
}
