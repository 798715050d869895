package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted at the register.
const (
	PaymentCash  = "cash"
	PaymentGCash = "gcash"
)

// Order is an append-only sales transaction. Once created it is never
// modified; corrections are handled upstream by recording a new order.
// Total always equals Subtotal (no tax or discount layer is modeled) and
// Change = CashReceived - Total.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string    `gorm:"uniqueIndex;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName      string    `gorm:"not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CashReceived  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Change        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        string          `gorm:"not null;default:'completed'"`
	PaymentMethod string          `gorm:"not null"` // "cash" | "gcash"
	CustomerName  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is one line of an order. Subtotal is Quantity × Price and is
// validated against the caller-supplied value before the order is accepted.
type OrderItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}
