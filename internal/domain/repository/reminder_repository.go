package repository

import (
	"context"
	"time"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error)
	FindByPatientAndRange(ctx context.Context, db *gorm.DB, patientID int, from, to time.Time) ([]entity.Reminder, error)
	// FindRecentByPatient returns reminders with alert time >= since, ordered
	// by alert time ascending. Feeds the adherence predictor.
	FindRecentByPatient(ctx context.Context, db *gorm.DB, patientID int, since time.Time) ([]entity.Reminder, error)
	// MarkDone flips a PENDING reminder to DONE. The status predicate is part
	// of the UPDATE so a reminder already swept to MISSED is never
	// resurrected; zero rows affected on an existing reminder is the
	// idempotent no-op path.
	MarkDone(ctx context.Context, db *gorm.DB, id int) (int64, error)
	// MarkOverdueMissed is the sweep's single bulk conditional update:
	// every PENDING reminder whose alert time is before now becomes MISSED.
	// The status is re-checked inside the statement, so a concurrent DONE
	// marking between cycles is never overwritten.
	MarkOverdueMissed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}
