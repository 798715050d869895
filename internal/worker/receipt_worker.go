package worker

// receipt_worker.go
// Generates PDF receipts for recorded orders. Runs off the request path so a
// slow disk never delays the register.

import (
	"context"
	"encoding/json"
	"fmt"

	"tindahan/internal/infra"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	OrderID string `json:"order_id"`
}

// ReceiptWorker renders receipt PDFs for completed orders.
type ReceiptWorker struct {
	orders      repository.OrderRepository
	storagePath string
}

func NewReceiptWorker(orders repository.OrderRepository, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{orders: orders, storagePath: storagePath}
}

// Process generates the PDF for one order. A returned error sends the job to
// the DLQ.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("receipt_worker: invalid payload: %w", err)
	}

	id, err := uuid.Parse(payload.OrderID)
	if err != nil {
		return fmt.Errorf("receipt_worker: bad order id %q: %w", payload.OrderID, err)
	}

	order, err := w.orders.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("receipt_worker: load order %s: %w", payload.OrderID, err)
	}

	path, err := infra.GenerateReceiptPDF(order, w.storagePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: render order %s: %w", payload.OrderID, err)
	}
	log.Info().Str("order", order.OrderNumber).Str("path", path).Msg("receipt_worker: receipt generated")
	return nil
}
