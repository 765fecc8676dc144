package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByUsernameAndRole(ctx context.Context, db *gorm.DB, username, role string) (*entity.User, error)
}
