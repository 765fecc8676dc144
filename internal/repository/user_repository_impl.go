package repository

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByUsernameAndRole(ctx context.Context, db *gorm.DB, username, role string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("username = ? AND role = ?", username, role).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
