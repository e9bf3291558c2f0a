package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderDispatcher interface {
	DispatchDue(ctx context.Context) (int, error)
}

type Scheduler struct {
	reminderService reminderDispatcher
	interval        time.Duration
	logger          logger.Logger
}

func New(
	reminderService reminderDispatcher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminderService: reminderService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.reminderService.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("failed to dispatch reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("reminder tick completed",
			logger.Int("sent", sent),
		)
	}
}
