package usecase

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReminderNotFound = errors.New("reminder not found")

type ReminderUsecase interface {
	// MarkDone marks a reminder DONE. Idempotent: marking a reminder that is
	// already DONE or was swept to MISSED succeeds without changing its
	// status, and triggers the same invalidation as the first call.
	MarkDone(ctx context.Context, id int) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	invalidator  service.Invalidator
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	invalidator service.Invalidator,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		invalidator:  invalidator,
	}
}

func (u *reminderUsecase) MarkDone(ctx context.Context, id int) error {
	affected, err := u.reminderRepo.MarkDone(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to mark reminder %d done: %+v", id, err)
		return err
	}

	// Zero rows means either the reminder does not exist or it is already
	// terminal. Only the former is an error.
	if affected == 0 {
		reminder, err := u.reminderRepo.FindByID(ctx, u.db, id)
		if err != nil {
			u.log.Warnf("Failed to load reminder %d: %+v", id, err)
			return err
		}
		if reminder == nil {
			return ErrReminderNotFound
		}
	}

	u.invalidator.Invalidate(ctx, service.ReminderStatusChanged)

	return nil
}
