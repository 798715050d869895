package worker

// lowstock_cron.go
// Background goroutine that periodically scans active inventory for items at
// or below the configured threshold and emails a digest to the alert address.
// Deliberately independent of order recording: orders do not adjust stock, so
// this sweep is the only automated low-stock signal.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tindahan/internal/repository"

	"github.com/rs/zerolog/log"
)

const lowStockTickInterval = 1 * time.Hour

// LowStockCronConfig holds all dependencies for the sweep goroutine.
type LowStockCronConfig struct {
	Items      repository.ItemRepository
	Dispatcher *Dispatcher
	AlertEmail string
	Threshold  int
}

// StartLowStockCron launches a background goroutine that ticks hourly, scans
// active items, and enqueues a digest email when any are running low.
// It respects the context for graceful shutdown.
func StartLowStockCron(ctx context.Context, cfg LowStockCronConfig) {
	go func() {
		ticker := time.NewTicker(lowStockTickInterval)
		defer ticker.Stop()

		log.Info().Int("threshold", cfg.Threshold).Msg("lowstock_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("lowstock_cron: shutting down")
				return
			case <-ticker.C:
				sweepLowStock(ctx, cfg)
			}
		}
	}()
}

func sweepLowStock(ctx context.Context, cfg LowStockCronConfig) {
	items, err := cfg.Items.FindActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to list active items")
		return
	}

	var lines []string
	for _, item := range items {
		if item.Quantity <= cfg.Threshold {
			lines = append(lines, fmt.Sprintf("  - %s (%s): %d left", item.Name, item.Category, item.Quantity))
		}
	}
	if len(lines) == 0 {
		return
	}

	if cfg.AlertEmail == "" {
		log.Warn().Int("low_items", len(lines)).Msg("lowstock_cron: low stock found but no alert email configured")
		return
	}

	body := fmt.Sprintf("The following items are at or below the threshold of %d units:\n\n%s\n",
		cfg.Threshold, strings.Join(lines, "\n"))
	err = cfg.Dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: cfg.AlertEmail,
		Subject: fmt.Sprintf("Low stock: %d item(s) need restocking", len(lines)),
		Body:    body,
	})
	if err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to enqueue digest")
		return
	}
	log.Info().Int("low_items", len(lines)).Msg("lowstock_cron: digest enqueued")
}
