package models

import (
	"strings"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Profile      *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the display name used to pre-fill checkout forms,
// falling back to the username when no names are set.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Profile holds the contact details attached to a user account. It shares
// the user's primary key and is created explicitly after registration, or
// lazily on first access.
type Profile struct {
	UserID               uint      `gorm:"primaryKey" json:"user_id"`
	Phone                string    `json:"phone"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	Region               string    `json:"region"`
	EmailVerified        bool      `gorm:"default:false" json:"email_verified"`
	NewsletterSubscribed bool      `gorm:"default:false" json:"newsletter_subscribed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
