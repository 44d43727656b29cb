package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
)

// Messages are the three texts sent when an order is created.
type Messages struct {
	CustomerSMS      string
	CustomerWhatsApp string
	AdminSMS         string
}

// FormatTZS renders an amount the way receipts show it: thousands grouped
// with commas, no cents.
func FormatTZS(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ComposeOrderMessages builds the customer SMS, the customer WhatsApp text
// and the admin SMS for a freshly created order, in the requested locale.
func ComposeOrderMessages(order *models.Order, items []models.OrderItem, loc i18n.Locale) Messages {
	total := FormatTZS(order.TotalAmount)

	var m Messages
	if loc == i18n.Swahili {
		m.CustomerSMS = fmt.Sprintf(
			"Ahsante %s!\nOda #%s imepokelewa.\nJumla: TZS %s\nNjia ya malipo: %s\nTutaungana nawe hivi punde.",
			order.CustomerName, order.OrderNumber, total, order.PaymentMethodDisplay())

		m.CustomerWhatsApp = fmt.Sprintf(
			"*AMBERTEK EXPORT*\n\n*Oda Mpya Imewekwa!*\n-------------------\n"+
				"*Nambari ya Oda:* %s\n*Mteja:* %s\n*Simu:* %s\n*Anwani:* %s\n"+
				"*Jumla:* TZS %s\n*Njia ya Malipo:* %s\n\n*Bidhaa:*\n",
			order.OrderNumber, order.CustomerName, order.CustomerPhone,
			order.CustomerAddress, total, order.PaymentMethodDisplay())

		m.AdminSMS = fmt.Sprintf(
			"Oda Mpya!\nNambari: %s\nMteja: %s\nSimu: %s\nJumla: TZS %s",
			order.OrderNumber, order.CustomerName, order.CustomerPhone, total)
	} else {
		m.CustomerSMS = fmt.Sprintf(
			"Thank you %s!\nOrder #%s received.\nTotal: TZS %s\nPayment: %s\nWe'll contact you shortly.",
			order.CustomerName, order.OrderNumber, total, order.PaymentMethodDisplay())

		m.CustomerWhatsApp = fmt.Sprintf(
			"*AMBERTEK EXPORT*\n\n*New Order Placed!*\n-------------------\n"+
				"*Order No:* %s\n*Customer:* %s\n*Phone:* %s\n*Address:* %s\n"+
				"*Total:* TZS %s\n*Payment Method:* %s\n\n*Items:*\n",
			order.OrderNumber, order.CustomerName, order.CustomerPhone,
			order.CustomerAddress, total, order.PaymentMethodDisplay())

		m.AdminSMS = fmt.Sprintf(
			"New Order!\nOrder #: %s\nCustomer: %s\nPhone: %s\nTotal: TZS %s",
			order.OrderNumber, order.CustomerName, order.CustomerPhone, total)
	}

	for _, item := range items {
		m.CustomerWhatsApp += fmt.Sprintf("• %s x%d - TZS %s\n",
			item.ProductName, item.Quantity, FormatTZS(item.ItemTotal()))
	}
	m.CustomerWhatsApp += fmt.Sprintf("\n*Grand Total: TZS %s*", total)

	return m
}

// ConfirmationEmailBody is the plain-text order confirmation sent to the
// customer.
func ConfirmationEmailBody(order *models.Order, items []models.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmation #%s\n\n", order.OrderNumber)
	fmt.Fprintf(&b, "Dear %s,\n\n", order.CustomerName)
	b.WriteString("Thank you for your order with Ambertek Exports!\n\n")

	b.WriteString("ORDER DETAILS:\n-------------\n")
	fmt.Fprintf(&b, "Order Number: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Order Date: %s\n", order.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Total Amount: TZS %s\n", FormatTZS(order.TotalAmount))
	fmt.Fprintf(&b, "Payment Method: %s\n", order.PaymentMethodDisplay())
	fmt.Fprintf(&b, "Status: %s\n\n", titleCase(string(order.Status)))

	b.WriteString("SHIPPING ADDRESS:\n-----------------\n")
	fmt.Fprintf(&b, "%s\n%s\n%s, %s\nPhone: %s\n\n",
		order.CustomerName, order.CustomerAddress, order.CustomerCity,
		order.CustomerRegion, order.CustomerPhone)

	b.WriteString("ORDER ITEMS:\n------------\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x %d: TZS %s\n", item.ProductName, item.Quantity, FormatTZS(item.ItemTotal()))
	}
	fmt.Fprintf(&b, "\nTotal: TZS %s\n\n", FormatTZS(order.TotalAmount))

	b.WriteString("DELIVERY INFORMATION:\n---------------------\n")
	if order.EstimatedDelivery != nil {
		fmt.Fprintf(&b, "Estimated Delivery: %s\n\n", order.EstimatedDelivery.Format("January 2, 2006"))
	} else {
		b.WriteString("Estimated Delivery: 3-5 business days\n\n")
	}

	b.WriteString("CONTACT US:\n-----------\n")
	b.WriteString("Email: support@ambertek.com\nHours: Monday-Friday, 9AM-5PM EAT\n\n")
	b.WriteString("Thank you for choosing Ambertek Exports!\n\nBest regards,\nAmbertek Exports Team\n")
	return b.String()
}

// AdminEmailBody is the plain-text new-order notification sent to the shop
// operator.
func AdminEmailBody(order *models.Order, items []models.OrderItem) string {
	email := order.CustomerEmail
	if email == "" {
		email = "Not provided"
	}
	notes := order.Notes
	if notes == "" {
		notes = "No notes provided"
	}

	var b strings.Builder
	b.WriteString("NEW ORDER NOTIFICATION\n======================\n\n")
	fmt.Fprintf(&b, "Order #%s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "Email: %s\n", email)
	fmt.Fprintf(&b, "Total: TZS %s\n", FormatTZS(order.TotalAmount))
	fmt.Fprintf(&b, "Payment Method: %s\n\n", order.PaymentMethodDisplay())

	b.WriteString("SHIPPING ADDRESS:\n")
	fmt.Fprintf(&b, "%s\n%s, %s\n\n", order.CustomerAddress, order.CustomerCity, order.CustomerRegion)

	b.WriteString("ORDER ITEMS:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x %d: TZS %s\n", item.ProductName, item.Quantity, FormatTZS(item.ItemTotal()))
	}
	fmt.Fprintf(&b, "\nTOTAL: TZS %s\n\n", FormatTZS(order.TotalAmount))
	fmt.Fprintf(&b, "CUSTOMER NOTES:\n%s\n", notes)
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
