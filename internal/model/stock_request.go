package model

import (
	"time"

	"github.com/google/uuid"
)

// Stock request categories. Intentionally a different (coarser) set than the
// inventory categories — requests are filed against supply lines, not shelf
// classification. Do not unify the two enums.
const (
	RequestCategoryDrink = "Drink"
	RequestCategoryBun   = "Bun"
	RequestCategoryMeat  = "Meat"
	RequestCategoryOther = "Other"
)

// StockRequestCategories lists every valid request category.
var StockRequestCategories = []string{
	RequestCategoryDrink, RequestCategoryBun, RequestCategoryMeat, RequestCategoryOther,
}

// ValidStockRequestCategory reports whether c is a valid request category.
func ValidStockRequestCategory(c string) bool {
	for _, v := range StockRequestCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Urgency levels, lowest to highest.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// ValidUrgencyLevel reports whether u is a known urgency level.
func ValidUrgencyLevel(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Stock request statuses. A request transitions out of pending exactly once.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// StockRequest is a restocking request filed by staff and triaged by admins.
type StockRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductName  string    `gorm:"not null"`
	Category     string    `gorm:"not null"` // "Drink" | "Bun" | "Meat" | "Other"
	UrgencyLevel string    `gorm:"not null;default:'medium'"`
	RequestedBy  *string
	Status       string `gorm:"not null;default:'pending';index"`
	CreatedAt    time.Time
}
