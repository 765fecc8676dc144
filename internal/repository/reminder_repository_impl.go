package repository

import (
	"context"
	"errors"
	"time"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	return db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByPatientAndRange(ctx context.Context, db *gorm.DB, patientID int, from, to time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.WithContext(ctx).
		Where("patient_id = ? AND alert_time >= ? AND alert_time < ?", patientID, from, to).
		Order("alert_time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindRecentByPatient(ctx context.Context, db *gorm.DB, patientID int, since time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.WithContext(ctx).
		Where("patient_id = ? AND alert_time >= ?", patientID, since).
		Order("alert_time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkDone only touches PENDING rows. DONE and MISSED are terminal, so the
// predicate keeps a reminder the sweep already promoted from being flipped
// back.
func (r *reminderRepository) MarkDone(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("id = ? AND status = ?", id, entity.ReminderStatusPending).
		Update("status", entity.ReminderStatusDone)
	return result.RowsAffected, result.Error
}

// MarkOverdueMissed is one conditional UPDATE, not read-then-write per row.
// A reminder marked DONE between sweep cycles fails the status predicate and
// stays DONE.
func (r *reminderRepository) MarkOverdueMissed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("alert_time < ? AND status = ?", now, entity.ReminderStatusPending).
		Update("status", entity.ReminderStatusMissed)
	return result.RowsAffected, result.Error
}
