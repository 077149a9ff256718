package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ShortageDigestJob periodically summarizes unresolved stock exceptions and
// hands the rollup to the notification sender. The digest is informational:
// failures are logged and the next run tries again.
type ShortageDigestJob struct {
	handler  queries.GetShortageSummaryQueryHandler
	sender   ports.NotificationSender
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShortageDigestJob creates the digest job with the given cron schedule
// (standard five-field spec, e.g. "0 7 * * *" for a daily 07:00 digest).
func NewShortageDigestJob(
	handler queries.GetShortageSummaryQueryHandler,
	sender ports.NotificationSender,
	schedule string,
	logger *slog.Logger,
) *ShortageDigestJob {
	return &ShortageDigestJob{
		handler:  handler,
		sender:   sender,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "shortage_digest_job"),
	}
}

// Start schedules the digest.
func (j *ShortageDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shortage digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *ShortageDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shortage digest job stopped")
}

func (j *ShortageDigestJob) run() {
	ctx := context.Background()

	summary, err := j.handler.Handle(ctx, queries.NewGetShortageSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Shortage digest query failed", "error", err)
		return
	}

	report := ports.ShortageReport{
		GeneratedAt: time.Now().UTC(),
		Lines:       make([]ports.ShortageReportLine, 0, len(summary)),
	}
	for _, line := range summary {
		report.Lines = append(report.Lines, ports.ShortageReportLine{
			SKU:            line.SKU,
			ProductTitle:   line.ProductTitle,
			Category:       line.Category,
			TotalQtyShort:  line.TotalQtyShort,
			OrderNumbers:   line.OrderNumbers,
			ExceptionCount: line.ExceptionCount,
		})
	}

	if err := j.sender.Send(ctx, report); err != nil {
		j.logger.ErrorContext(ctx, "Shortage digest delivery failed", "error", err)
	}
}
