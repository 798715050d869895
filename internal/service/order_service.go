package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"
	"tindahan/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService appends sales transactions to the ledger. Orders are immutable
// once recorded; there is no update path. Recording an order does NOT touch
// item quantities — inventory and sales are tracked independently (restocking
// goes through stock requests, shrinkage through manual item updates).
type OrderService interface {
	Record(ctx context.Context, userID uuid.UUID, userName string, req dto.RecordOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
}

type orderService struct {
	repo       repository.OrderRepository
	dispatcher *worker.Dispatcher
}

func NewOrderService(repo repository.OrderRepository, dispatcher *worker.Dispatcher) OrderService {
	return &orderService{repo: repo, dispatcher: dispatcher}
}

func (s *orderService) Record(ctx context.Context, userID uuid.UUID, userName string, req dto.RecordOrderRequest) (*dto.OrderResponse, error) {
	if req.PaymentMethod != model.PaymentCash && req.PaymentMethod != model.PaymentGCash {
		return nil, &ValidationError{Field: "payment_method", Reason: "must be cash or gcash"}
	}
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}

	subtotal := decimal.Zero
	lines := make([]model.OrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, &ValidationError{Field: "items", Reason: fmt.Sprintf("line %d: quantity must be positive", i+1)}
		}
		expected := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !expected.Equal(item.Subtotal) {
			return nil, &ValidationError{
				Field:  "items",
				Reason: fmt.Sprintf("line %d: subtotal %s does not match quantity × price = %s", i+1, item.Subtotal, expected),
			}
		}
		subtotal = subtotal.Add(item.Subtotal)
		lines = append(lines, model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}

	// No tax or discount layer: the total is the subtotal.
	total := subtotal
	if req.CashReceived.LessThan(total) {
		return nil, &InsufficientPaymentError{Total: total, Received: req.CashReceived}
	}
	change := req.CashReceived.Sub(total)

	order := &model.Order{
		OrderNumber:   req.OrderNumber,
		UserID:        userID,
		UserName:      userName,
		Items:         lines,
		Subtotal:      subtotal,
		Total:         total,
		CashReceived:  req.CashReceived,
		Change:        change,
		Status:        "completed",
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateOrderError{OrderNumber: req.OrderNumber}
		}
		return nil, err
	}

	// Receipt PDF generation is best-effort and asynchronous.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{OrderID: order.ID.String()})
	}

	resp := orderToResponse(order)
	return resp, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID.String(),
		UserName:      o.UserName,
		Items:         items,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		CashReceived:  o.CashReceived,
		Change:        o.Change,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CustomerName:  o.CustomerName,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}
