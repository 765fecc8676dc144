package usecase

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username, password or role")

// AuthUsecase is a plain credential lookup: username + role resolve a user
// row, bcrypt checks the password, and a short-lived token carries the role
// and linked entity ID for the static role check.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsernameAndRole(ctx, u.db, req.Username, req.Role)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", req.Username, err)
		return nil, err
	}
	if user == nil {
		u.log.Infof("Login rejected for %s (%s): no matching user", req.Username, req.Role)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		u.log.Infof("Login rejected for %s (%s): bad password", req.Username, req.Role)
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(user.LinkedID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to sign token for %s: %+v", req.Username, err)
		return nil, err
	}

	u.log.Infof("Login success: %s (%s, linked id %d)", req.Username, user.Role, user.LinkedID)

	return &dto.LoginResponse{
		Role:  user.Role,
		ID:    user.LinkedID,
		Token: token,
	}, nil
}
