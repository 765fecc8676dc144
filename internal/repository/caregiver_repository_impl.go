package repository

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type caregiverRepository struct{}

func NewCaregiverRepository() domainRepo.CaregiverRepository {
	return &caregiverRepository{}
}

func (r *caregiverRepository) Create(ctx context.Context, db *gorm.DB, caregiver *entity.Caregiver) error {
	return db.WithContext(ctx).Create(caregiver).Error
}

func (r *caregiverRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Caregiver, error) {
	var caregiver entity.Caregiver
	err := db.WithContext(ctx).Where("id = ?", id).First(&caregiver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &caregiver, nil
}

func (r *caregiverRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Caregiver, error) {
	var caregivers []entity.Caregiver
	err := db.WithContext(ctx).Order("id ASC").Find(&caregivers).Error
	if err != nil {
		return nil, err
	}
	return caregivers, nil
}

func (r *caregiverRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Caregiver{})
	return result.RowsAffected, result.Error
}
