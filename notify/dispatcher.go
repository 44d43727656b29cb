// Package notify fans an accepted order out to the customer and the shop
// operator: SMS and WhatsApp texts plus confirmation and admin emails.
// Every transport failure is caught, logged and recorded as a false flag on
// the order; nothing here may affect the outcome of order placement.
package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
)

// FlagStore persists notification bookkeeping back onto the order row.
type FlagStore interface {
	UpdateNotificationState(order *models.Order, fields ...string) error
}

type Config struct {
	// FromAddress is the envelope sender for outgoing mail.
	FromAddress string
	// AdminEmail receives new-order notifications; empty disables them.
	AdminEmail string
	// AdminPhone receives the admin SMS; empty disables it.
	AdminPhone string
}

type Dispatcher struct {
	sms   SMSSender
	email EmailSender
	store FlagStore
	cfg   Config
}

func NewDispatcher(sms SMSSender, email EmailSender, store FlagStore, cfg Config) *Dispatcher {
	return &Dispatcher{sms: sms, email: email, store: store, cfg: cfg}
}

// NotifyOrderCreated composes and sends the customer SMS, the customer
// WhatsApp message and the admin SMS in the requested locale (unknown
// locales fall back to English), then records which channels succeeded.
// Signature matches orders.PostCommitHook.
func (d *Dispatcher) NotifyOrderCreated(order *models.Order, items []models.OrderItem, loc i18n.Locale) {
	loc = i18n.Normalize(string(loc))
	msgs := ComposeOrderMessages(order, items, loc)

	if err := d.sms.Send(msgs.CustomerSMS, order.CustomerPhone); err != nil {
		log.Printf("customer SMS for order %s failed: %v", order.OrderNumber, err)
	} else {
		order.SMSSent = true
		order.CustomerNotified = true
	}

	if err := d.sms.Send(msgs.CustomerWhatsApp, order.CustomerPhone); err != nil {
		log.Printf("customer WhatsApp for order %s failed: %v", order.OrderNumber, err)
	} else {
		order.WhatsAppSent = true
		order.CustomerNotified = true
	}

	if d.cfg.AdminPhone != "" {
		if err := d.sms.Send(msgs.AdminSMS, d.cfg.AdminPhone); err != nil {
			log.Printf("admin SMS for order %s failed: %v", order.OrderNumber, err)
		} else {
			order.AdminNotified = true
		}
	}

	if err := d.store.UpdateNotificationState(order,
		"sms_sent", "whatsapp_sent", "customer_notified", "admin_notified"); err != nil {
		log.Printf("recording SMS flags for order %s failed: %v", order.OrderNumber, err)
	}
}

// EmailOrderCreated sends the confirmation and admin emails and persists
// the email flags. Signature matches orders.PostCommitHook; the locale is
// unused because order emails are operator-facing English text.
func (d *Dispatcher) EmailOrderCreated(order *models.Order, items []models.OrderItem, _ i18n.Locale) {
	sent := d.SendConfirmationEmail(order, items)
	adminSent := d.SendAdminNotification(order, items)
	if !sent && !adminSent {
		return
	}
	if err := d.store.UpdateNotificationState(order,
		"confirmation_email_sent", "confirmation_email_sent_at",
		"admin_email_sent", "admin_email_sent_at"); err != nil {
		log.Printf("recording email flags for order %s failed: %v", order.OrderNumber, err)
	}
}

// SendConfirmationEmail emails the customer their order receipt. Returns
// whether the message went out; transport errors are logged, never raised.
func (d *Dispatcher) SendConfirmationEmail(order *models.Order, items []models.OrderItem) bool {
	if order.CustomerEmail == "" {
		log.Printf("order %s has no customer email, skipping confirmation", order.OrderNumber)
		return false
	}

	subject := fmt.Sprintf("Order Confirmation #%s - Ambertek Exports", order.OrderNumber)
	body := ConfirmationEmailBody(order, items)
	if err := d.email.Send(subject, body, d.cfg.FromAddress, []string{order.CustomerEmail}); err != nil {
		log.Printf("confirmation email for order %s failed: %v", order.OrderNumber, err)
		return false
	}

	now := time.Now()
	order.ConfirmationEmailSent = true
	order.ConfirmationEmailSentAt = &now
	return true
}

// SendAdminNotification emails the operator about a new order. Returns
// whether the message went out; transport errors are logged, never raised.
func (d *Dispatcher) SendAdminNotification(order *models.Order, items []models.OrderItem) bool {
	if d.cfg.AdminEmail == "" {
		log.Printf("no admin email configured, skipping notification for order %s", order.OrderNumber)
		return false
	}

	subject := fmt.Sprintf("New Order: #%s", order.OrderNumber)
	body := AdminEmailBody(order, items)
	if err := d.email.Send(subject, body, d.cfg.FromAddress, []string{d.cfg.AdminEmail}); err != nil {
		log.Printf("admin email for order %s failed: %v", order.OrderNumber, err)
		return false
	}

	now := time.Now()
	order.AdminEmailSent = true
	order.AdminEmailSentAt = &now
	return true
}
