package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shipping/internal/core/ports"
)

// RateAuditJob periodically sweeps every rate lane and reports tier lists
// that drifted out of shape: breakpoints that regress, or a larger tier
// priced below a smaller one. Rates written through the API are sorted on
// the way in, so a finding here points at rows edited directly in the
// database.
type RateAuditJob struct {
	rates    ports.RateRepository
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewRateAuditJob creates a job auditing rate tables on the given cron
// schedule.
func NewRateAuditJob(rates ports.RateRepository, schedule string, logger *slog.Logger) *RateAuditJob {
	return &RateAuditJob{
		rates:    rates,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "rate_audit_job"),
	}
}

// Start begins the audit job on its schedule.
func (j *RateAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Rate audit sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rate audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit job.
func (j *RateAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rate audit job stopped")
}

func (j *RateAuditJob) run(ctx context.Context) error {
	entries, err := j.rates.GetAll(ctx)
	if err != nil {
		return err
	}

	findings := 0
	for _, entry := range entries {
		tiers := entry.Tiers()
		for i := 1; i < len(tiers); i++ {
			prev, cur := tiers[i-1], tiers[i]

			if cur.Weight() < prev.Weight() || cur.Volume() < prev.Volume() {
				findings++
				j.logger.WarnContext(ctx, "Rate lane has regressing breakpoints",
					"company_package_id", entry.CompanyPackageID().String(),
					"delivery_from", string(entry.DeliveryFrom()),
					"tier", i,
				)
			}

			if cur.Price().LessThan(prev.Price()) {
				findings++
				j.logger.WarnContext(ctx, "Rate lane has price inversion",
					"company_package_id", entry.CompanyPackageID().String(),
					"delivery_from", string(entry.DeliveryFrom()),
					"tier", i,
				)
			}
		}
	}

	j.logger.InfoContext(ctx, "Rate audit sweep completed",
		"lanes", len(entries),
		"findings", findings,
	)
	return nil
}
