// Package notifier contains outbound adapters for the NotificationSender
// port. The engine produces shortage reports; adapters here decide where
// they land.
package notifier

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// LogNotificationSender writes shortage reports to the structured log.
// It is the default delivery channel and a safe fallback when no external
// channel is configured.
type LogNotificationSender struct {
	logger *slog.Logger
}

// NewLogNotificationSender creates a sender that logs shortage reports.
func NewLogNotificationSender(logger *slog.Logger) *LogNotificationSender {
	return &LogNotificationSender{
		logger: logger.With("component", "shortage_notifier"),
	}
}

// Send logs the report, one line per SKU. Never returns an error.
func (s *LogNotificationSender) Send(ctx context.Context, report ports.ShortageReport) error {
	if len(report.Lines) == 0 {
		s.logger.InfoContext(ctx, "Shortage digest: no unresolved shortages",
			"generated_at", report.GeneratedAt)
		return nil
	}

	s.logger.InfoContext(ctx, "Shortage digest",
		"generated_at", report.GeneratedAt,
		"sku_count", len(report.Lines))

	for _, line := range report.Lines {
		s.logger.InfoContext(ctx, "Unresolved shortage",
			"sku", line.SKU,
			"title", line.ProductTitle,
			"category", line.Category,
			"qty_short", line.TotalQtyShort,
			"orders", line.OrderNumbers,
			"exception_count", line.ExceptionCount,
		)
	}

	return nil
}
