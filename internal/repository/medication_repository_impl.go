package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type medicationRepository struct{}

func NewMedicationRepository() domainRepo.MedicationRepository {
	return &medicationRepository{}
}

func (r *medicationRepository) Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error {
	return db.WithContext(ctx).Create(medication).Error
}

func (r *medicationRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("id ASC").Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.WithContext(ctx).Order("id ASC").Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medication{})
	return result.RowsAffected, result.Error
}
