package jobs

import (
	"context"
	"log/slog"

	"dragonpath/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EscrowReleaseJob manages the scheduled auto-release of escrowed funds.
// Runs every minute to release escrows for orders whose buyers never
// confirmed receipt within the protection window.
type EscrowReleaseJob struct {
	handler commands.ReleaseDueEscrowsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEscrowReleaseJob creates a new job for releasing due escrows.
// Uses ReleaseDueEscrowsCommandHandler to sweep delivered orders past the
// protection window.
func NewEscrowReleaseJob(handler commands.ReleaseDueEscrowsCommandHandler, logger *slog.Logger) *EscrowReleaseJob {
	return &EscrowReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "escrow_release_job"),
	}
}

// Start begins the escrow release job to run every minute.
func (j *EscrowReleaseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseDueEscrowsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Escrow release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escrow release job started (running every minute)")
	return nil
}

// Stop stops the escrow release job.
func (j *EscrowReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Escrow release job stopped")
}
