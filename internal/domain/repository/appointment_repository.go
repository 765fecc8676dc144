package repository

import (
	"context"
	"time"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientAndRange(ctx context.Context, db *gorm.DB, patientID int, from, to time.Time) ([]entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
