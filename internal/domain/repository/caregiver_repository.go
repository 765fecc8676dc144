package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CaregiverRepository interface {
	Create(ctx context.Context, db *gorm.DB, caregiver *entity.Caregiver) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Caregiver, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Caregiver, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
