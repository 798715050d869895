package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	Name     string          `json:"name"     validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Subtotal decimal.Decimal `json:"subtotal" validate:"required"`
}

type RecordOrderRequest struct {
	OrderNumber   string             `json:"order_number"   validate:"required"`
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
	CashReceived  decimal.Decimal    `json:"cash_received"  validate:"required"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=cash gcash"`
	CustomerName  *string            `json:"customer_name"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type OrderFilter struct {
	Date   string `form:"date"` // YYYY-MM-DD; empty = today
	Status string `form:"status"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	UserID        string              `json:"user_id"`
	UserName      string              `json:"user_name"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Total         decimal.Decimal     `json:"total"`
	CashReceived  decimal.Decimal     `json:"cash_received"`
	Change        decimal.Decimal     `json:"change"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	CustomerName  *string             `json:"customer_name"`
	CreatedAt     string              `json:"created_at"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
