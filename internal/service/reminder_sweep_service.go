package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-eldercare-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sweepTimeout = 30 * time.Second

// ReminderSweepService periodically promotes overdue PENDING reminders to
// MISSED with a single conditional bulk update, then triggers one
// ReminderStatusChanged invalidation per cycle that changed rows. Failures
// are logged and retried on the next tick; the sweep never crashes the
// process and never reports errors to request handlers.
//
// The clock and interval are injectable so tests can drive cycles
// deterministically.
type ReminderSweepService struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	invalidator  Invalidator
	interval     time.Duration
	now          func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewReminderSweepService(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	invalidator Invalidator,
	interval time.Duration,
) *ReminderSweepService {
	return &ReminderSweepService{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		invalidator:  invalidator,
		interval:     interval,
		now:          time.Now,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the sweep loop. Call Stop during graceful shutdown.
func (s *ReminderSweepService) Start() {
	s.wg.Add(1)
	go s.loop()
	s.log.Infof("Reminder sweep started, interval %v", s.interval)
}

// Stop shuts the sweep down and waits for an in-flight cycle to finish.
// Safe to call multiple times.
func (s *ReminderSweepService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("Reminder sweep stopped")
	}
}

func (s *ReminderSweepService) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweepOnce(context.Background())
		}
	}
}

// sweepOnce runs one cycle. The status predicate is re-checked inside the
// UPDATE, so a reminder concurrently marked DONE stays DONE. Invalidation
// fires once per cycle, not once per row, to bound eviction cost.
func (s *ReminderSweepService) sweepOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	affected, err := s.reminderRepo.MarkOverdueMissed(ctx, s.db, s.now())
	if err != nil {
		s.log.Warnf("Reminder sweep failed, retrying next cycle: %+v", err)
		return
	}
	if affected == 0 {
		return
	}

	s.log.Infof("Reminder sweep marked %d reminders as MISSED", affected)
	s.invalidator.Invalidate(ctx, ReminderStatusChanged)
}
