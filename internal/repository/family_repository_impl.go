package repository

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type familyRepository struct{}

func NewFamilyRepository() domainRepo.FamilyRepository {
	return &familyRepository{}
}

func (r *familyRepository) Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *familyRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.FamilyMember, error) {
	var member entity.FamilyMember
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *familyRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.FamilyMember, error) {
	var members []entity.FamilyMember
	err := db.WithContext(ctx).Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *familyRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FamilyMember{})
	return result.RowsAffected, result.Error
}
