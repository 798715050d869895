package model

import (
	"time"

	"github.com/google/uuid"
)

// Item categories. The set is fixed; services validate against it.
const (
	CategoryDrinks  = "Drinks"
	CategoryBread   = "Bread"
	CategoryMeat    = "Meat"
	CategoryPoultry = "Poultry"
	CategoryDairy   = "Dairy"
	CategoryHotdogs = "Hotdogs & Sausages"
	CategoryOther   = "Other"
)

// ItemCategories lists every valid inventory category.
var ItemCategories = []string{
	CategoryDrinks, CategoryBread, CategoryMeat, CategoryPoultry,
	CategoryDairy, CategoryHotdogs, CategoryOther,
}

// ValidItemCategory reports whether c is one of the fixed inventory categories.
func ValidItemCategory(c string) bool {
	for _, v := range ItemCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Item is a stocked inventory record. Items are never hard-deleted: archiving
// soft-deletes them, which frees the name for a new active item. The database
// enforces name uniqueness among non-archived rows via a partial unique index
// (see infra.NewDatabase), so concurrent creates cannot race past the
// service-level check.
type Item struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"index;not null"`
	Quantity   int       `gorm:"not null;default:0"`
	Category   string    `gorm:"not null"`
	IsArchived bool      `gorm:"not null;default:false"`
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
