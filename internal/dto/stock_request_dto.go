package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SubmitStockRequestRequest struct {
	ProductName  string  `json:"product_name"  validate:"required,min=2,max=120"`
	Category     string  `json:"category"      validate:"required"`
	UrgencyLevel string  `json:"urgency_level"` // defaults to "medium" when empty
	RequestedBy  *string `json:"requested_by"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type StockRequestFilter struct {
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockRequestResponse struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	UrgencyLevel string  `json:"urgency_level"`
	RequestedBy  *string `json:"requested_by"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
