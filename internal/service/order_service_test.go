package service

import (
	"context"
	"testing"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubOrderRepo is an in-memory append-only OrderRepository for unit tests.
type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
	byNum  map[string]uuid.UUID
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: make(map[uuid.UUID]*model.Order),
		byNum:  make(map[string]uuid.UUID),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if _, taken := r.byNum[o.OrderNumber]; taken {
		return gorm.ErrDuplicatedKey
	}
	o.ID = uuid.New()
	cp := *o
	r.orders[o.ID] = &cp
	r.byNum[o.OrderNumber] = o.ID
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*model.Order, error) {
	id, ok := r.byNum[orderNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(context.Background(), id)
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

func orderReq(orderNumber string, cash int64) dto.RecordOrderRequest {
	return dto.RecordOrderRequest{
		OrderNumber: orderNumber,
		Items: []dto.OrderItemRequest{
			{Name: "Classic Burger", Quantity: 2, Price: dec(75), Subtotal: dec(150)},
			{Name: "Iced Tea", Quantity: 4, Price: dec(25), Subtotal: dec(100)},
		},
		CashReceived:  dec(cash),
		PaymentMethod: model.PaymentCash,
	}
}

func TestOrderServiceRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)
	userID := uuid.New()

	resp, err := svc.Record(ctx, userID, "Ana", orderReq("ORD-0001", 300))
	require.NoError(t, err)

	assert.Equal(t, "ORD-0001", resp.OrderNumber)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, "Ana", resp.UserName)
	assert.True(t, resp.Subtotal.Equal(dec(250)))
	assert.True(t, resp.Total.Equal(dec(250)))
	assert.True(t, resp.Change.Equal(dec(50)))
	assert.Equal(t, "completed", resp.Status)
	assert.Len(t, resp.Items, 2)
}

func TestOrderServiceRecordInsufficientPayment(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	_, err := svc.Record(ctx, uuid.New(), "Ana", orderReq("ORD-0002", 200))
	var ip *InsufficientPaymentError
	require.ErrorAs(t, err, &ip)
	assert.True(t, ip.Total.Equal(dec(250)))
	assert.True(t, ip.Received.Equal(dec(200)))
}

func TestOrderServiceRecordExactPayment(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	resp, err := svc.Record(ctx, uuid.New(), "Ana", orderReq("ORD-0003", 250))
	require.NoError(t, err)
	assert.True(t, resp.Change.IsZero())
}

func TestOrderServiceRecordLineMismatch(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	req := orderReq("ORD-0004", 300)
	req.Items[1].Subtotal = dec(99) // 4 × 25 = 100

	_, err := svc.Record(ctx, uuid.New(), "Ana", req)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
}

func TestOrderServiceRecordRejectsBadPaymentMethod(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	req := orderReq("ORD-0005", 300)
	req.PaymentMethod = "card"

	_, err := svc.Record(ctx, uuid.New(), "Ana", req)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "payment_method", ve.Field)
}

func TestOrderServiceRecordDuplicateOrderNumber(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	_, err := svc.Record(ctx, uuid.New(), "Ana", orderReq("ORD-0006", 300))
	require.NoError(t, err)

	_, err = svc.Record(ctx, uuid.New(), "Ben", orderReq("ORD-0006", 300))
	var dup *DuplicateOrderError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ORD-0006", dup.OrderNumber)
}

func TestOrderServiceRecordEmptyOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newStubOrderRepo(), nil)

	_, err := svc.Record(ctx, uuid.New(), "Ana", dto.RecordOrderRequest{
		OrderNumber:   "ORD-0007",
		CashReceived:  dec(100),
		PaymentMethod: model.PaymentGCash,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
}
