package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AnnouncementActivationJob flips pending announcements to active once
// their start date arrives. Runs every minute; activation is not
// latency-sensitive.
type AnnouncementActivationJob struct {
	handler commands.ActivateDueAnnouncementsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAnnouncementActivationJob creates the activation job around
// ActivateDueAnnouncementsCommandHandler.
func NewAnnouncementActivationJob(
	handler commands.ActivateDueAnnouncementsCommandHandler,
	logger *slog.Logger,
) *AnnouncementActivationJob {
	return &AnnouncementActivationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "announcement_activation_job"),
	}
}

// Start begins the activation sweep, running once a minute. A failed
// sweep is logged and retried on the next tick.
func (j *AnnouncementActivationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewActivateDueAnnouncementsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Announcement activation sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Announcement activation job started (running every minute)")
	return nil
}

// Stop stops the activation job.
func (j *AnnouncementActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Announcement activation job stopped")
}
