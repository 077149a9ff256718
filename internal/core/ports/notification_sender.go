package ports

import (
	"context"
	"time"
)

// ShortageReportLine is one SKU's rollup of unresolved shortages handed to
// the notification collaborator.
type ShortageReportLine struct {
	SKU            string
	ProductTitle   string
	Category       string
	TotalQtyShort  int
	OrderNumbers   []string
	ExceptionCount int
}

// ShortageReport is the aggregated unresolved-shortage payload produced for
// the notification collaborator.
type ShortageReport struct {
	GeneratedAt time.Time
	Lines       []ShortageReportLine
}

// NotificationSender delivers a shortage report to whoever needs to know
// about missing stock. Delivery is an external concern: the engine never
// depends on it succeeding and never calls it from inside an allocation
// transaction.
type NotificationSender interface {
	Send(ctx context.Context, report ShortageReport) error
}
