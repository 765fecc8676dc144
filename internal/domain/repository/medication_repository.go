package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Medication, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Medication, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
