package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
	"github.com/ISSA5922/ambertek-export/notify"
)

type fakeSMS struct {
	sent     []string // recipients, in send order
	bodies   []string
	failWith error
}

func (f *fakeSMS) Send(message, to string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, to)
	f.bodies = append(f.bodies, message)
	return nil
}

type fakeEmail struct {
	subjects []string
	to       [][]string
	failWith error
}

func (f *fakeEmail) Send(subject, body, from string, to []string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.subjects = append(f.subjects, subject)
	f.to = append(f.to, to)
	return nil
}

type fakeFlags struct {
	calls    [][]string
	failWith error
}

func (f *fakeFlags) UpdateNotificationState(order *models.Order, fields ...string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.calls = append(f.calls, fields)
	return nil
}

func testConfig() notify.Config {
	return notify.Config{
		FromAddress: "orders@ambertek.com",
		AdminEmail:  "ops@ambertek.com",
		AdminPhone:  "+255700000099",
	}
}

func TestNotifyOrderCreatedSetsFlags(t *testing.T) {
	sms := &fakeSMS{}
	flags := &fakeFlags{}
	d := notify.NewDispatcher(sms, &fakeEmail{}, flags, testConfig())

	order, items := sampleOrder()
	d.NotifyOrderCreated(order, items, i18n.Swahili)

	// customer SMS, customer WhatsApp, admin SMS
	require.Len(t, sms.sent, 3)
	assert.Equal(t, order.CustomerPhone, sms.sent[0])
	assert.Equal(t, order.CustomerPhone, sms.sent[1])
	assert.Equal(t, "+255700000099", sms.sent[2])
	assert.Contains(t, sms.bodies[0], "Ahsante")

	assert.True(t, order.SMSSent)
	assert.True(t, order.WhatsAppSent)
	assert.True(t, order.CustomerNotified)
	assert.True(t, order.AdminNotified)

	require.Len(t, flags.calls, 1)
	assert.Equal(t, []string{"sms_sent", "whatsapp_sent", "customer_notified", "admin_notified"}, flags.calls[0])
}

func TestNotifyOrderCreatedSwallowsTransportFailure(t *testing.T) {
	sms := &fakeSMS{failWith: errors.New("gateway down")}
	flags := &fakeFlags{}
	d := notify.NewDispatcher(sms, &fakeEmail{}, flags, testConfig())

	order, items := sampleOrder()
	assert.NotPanics(t, func() {
		d.NotifyOrderCreated(order, items, i18n.English)
	})

	assert.False(t, order.SMSSent)
	assert.False(t, order.WhatsAppSent)
	assert.False(t, order.CustomerNotified)
	assert.False(t, order.AdminNotified)
	// Flags are still persisted so the record reflects the failed attempt.
	require.Len(t, flags.calls, 1)
}

func TestNotifyOrderCreatedSkipsAdminSMSWithoutPhone(t *testing.T) {
	sms := &fakeSMS{}
	cfg := testConfig()
	cfg.AdminPhone = ""
	d := notify.NewDispatcher(sms, &fakeEmail{}, &fakeFlags{}, cfg)

	order, items := sampleOrder()
	d.NotifyOrderCreated(order, items, i18n.English)

	assert.Len(t, sms.sent, 2)
	assert.False(t, order.AdminNotified)
}

func TestEmailOrderCreatedSendsBothAndPersists(t *testing.T) {
	email := &fakeEmail{}
	flags := &fakeFlags{}
	d := notify.NewDispatcher(&fakeSMS{}, email, flags, testConfig())

	order, items := sampleOrder()
	d.EmailOrderCreated(order, items, i18n.English)

	require.Len(t, email.subjects, 2)
	assert.Equal(t, "Order Confirmation #ORD-20260901-A1B2 - Ambertek Exports", email.subjects[0])
	assert.Equal(t, "New Order: #ORD-20260901-A1B2", email.subjects[1])
	assert.Equal(t, []string{order.CustomerEmail}, email.to[0])
	assert.Equal(t, []string{"ops@ambertek.com"}, email.to[1])

	assert.True(t, order.ConfirmationEmailSent)
	require.NotNil(t, order.ConfirmationEmailSentAt)
	assert.True(t, order.AdminEmailSent)
	require.NotNil(t, order.AdminEmailSentAt)
	require.Len(t, flags.calls, 1)
}

func TestEmailOrderCreatedSkipsPersistWhenNothingSent(t *testing.T) {
	email := &fakeEmail{failWith: errors.New("smtp refused")}
	flags := &fakeFlags{}
	d := notify.NewDispatcher(&fakeSMS{}, email, flags, testConfig())

	order, items := sampleOrder()
	d.EmailOrderCreated(order, items, i18n.English)

	assert.False(t, order.ConfirmationEmailSent)
	assert.False(t, order.AdminEmailSent)
	assert.Empty(t, flags.calls)
}

func TestSendConfirmationEmailWithoutAddress(t *testing.T) {
	email := &fakeEmail{}
	d := notify.NewDispatcher(&fakeSMS{}, email, &fakeFlags{}, testConfig())

	order, items := sampleOrder()
	order.CustomerEmail = ""
	assert.False(t, d.SendConfirmationEmail(order, items))
	assert.Empty(t, email.subjects)
}

func TestSendAdminNotificationWithoutAdminEmail(t *testing.T) {
	email := &fakeEmail{}
	cfg := testConfig()
	cfg.AdminEmail = ""
	d := notify.NewDispatcher(&fakeSMS{}, email, &fakeFlags{}, cfg)

	order, items := sampleOrder()
	assert.False(t, d.SendAdminNotification(order, items))
	assert.Empty(t, email.subjects)
}
