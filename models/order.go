package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Confirmed by seller
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by operator

	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentMobileMoney    PaymentMethod = "mobile"
	PaymentBankTransfer   PaymentMethod = "bank"
)

type Order struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;size:20;not null" json:"order_number"`

	// UserID is a weak reference: deleting the account keeps the order.
	UserID *uint `json:"user_id,omitempty"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CustomerName    string `gorm:"not null" json:"customer_name"`
	CustomerEmail   string `gorm:"not null" json:"customer_email"`
	CustomerPhone   string `gorm:"not null" json:"customer_phone"`
	CustomerAddress string `gorm:"not null" json:"customer_address"`
	CustomerCity    string `json:"customer_city"`
	CustomerRegion  string `json:"customer_region"`

	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod PaymentMethod   `gorm:"type:VARCHAR(20);default:'cod'" json:"payment_method"`
	PaymentStatus bool            `gorm:"default:false" json:"payment_status"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	ConfirmationEmailSent   bool       `gorm:"default:false" json:"confirmation_email_sent"`
	ConfirmationEmailSentAt *time.Time `json:"confirmation_email_sent_at,omitempty"`
	AdminEmailSent          bool       `gorm:"default:false" json:"admin_email_sent"`
	AdminEmailSentAt        *time.Time `json:"admin_email_sent_at,omitempty"`
	SMSSent                 bool       `gorm:"default:false" json:"sms_sent"`
	WhatsAppSent            bool       `gorm:"default:false" json:"whatsapp_sent"`
	CustomerNotified        bool       `gorm:"default:false" json:"customer_notified"`
	AdminNotified           bool       `gorm:"default:false" json:"admin_notified"`

	Notes             string     `json:"notes"`
	EstimatedDelivery *time.Time `gorm:"type:date" json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// PaymentMethodDisplay returns the human-readable payment method used in
// notifications and receipts.
func (o *Order) PaymentMethodDisplay() string {
	switch o.PaymentMethod {
	case PaymentCashOnDelivery:
		return "Cash on Delivery"
	case PaymentMobileMoney:
		return "Mobile Money"
	case PaymentBankTransfer:
		return "Bank Transfer"
	}
	return string(o.PaymentMethod)
}

// OrderItem copies the product's name and price at order time so the order
// stays historically accurate if the catalog entry changes or is deleted.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (i OrderItem) ItemTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
