package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type FamilyRepository interface {
	Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.FamilyMember, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.FamilyMember, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
