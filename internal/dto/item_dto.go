package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=120"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Category string `json:"category" validate:"required"`
}

type UpdateItemRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=120"`
	Quantity *int    `json:"quantity" validate:"omitempty,min=0"`
	Category *string `json:"category"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ItemFilter struct {
	Category        string `form:"category"`
	IncludeArchived bool   `form:"include_archived"`
	Archived        bool   `form:"archived"` // list archived items only
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	Category   string     `json:"category"`
	IsArchived bool       `json:"is_archived"`
	ArchivedAt *time.Time `json:"archived_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
