package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"SiliconMeter/internal/notifier"
	"SiliconMeter/internal/runner"
)

// Scheduler runs the tracker batch on a cron schedule (daemon mode).
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *runner.Runner
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a Scheduler. notifier may be nil when Telegram is
// not configured.
func NewScheduler(ctx context.Context, r *runner.Runner, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   r,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the daily tracking task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily tracking task")
	report, err := s.Runner.Run()
	if err != nil {
		log.Printf("[ERROR] daily run: %v", err)
		s.trySend(fmt.Sprintf("❌ tracking run failed: %v", err))
		return
	}
	s.trySend(notifier.FormatRunReport(report))
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
