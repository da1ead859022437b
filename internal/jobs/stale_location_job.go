package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleLocationJob reminds online moving stalls whose location pin has gone
// stale. Runs hourly; stalls with a pin older than a day get a refresh message.
type StaleLocationJob struct {
	handler commands.NotifyStaleVendorsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleLocationJob creates a new job for nudging stale vendors.
// Uses NotifyStaleVendorsCommandHandler to send the reminders every hour.
func NewStaleLocationJob(handler commands.NotifyStaleVendorsCommandHandler, logger *slog.Logger) *StaleLocationJob {
	return &StaleLocationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_location_job"),
	}
}

// Start begins the stale location job to run at the top of every hour.
func (j *StaleLocationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewNotifyStaleVendorsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale location job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale location job started (running hourly)")
	return nil
}

// Stop stops the stale location job.
func (j *StaleLocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale location job stopped")
}
