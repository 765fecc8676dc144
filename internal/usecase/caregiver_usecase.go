package usecase

import (
	"context"
	"encoding/json"

	"go-eldercare-backend/internal/converter"
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CaregiverUsecase interface {
	GetAllCaregivers(ctx context.Context) (*dto.CaregiverListResponse, error)
	CreateCaregiver(ctx context.Context, req *dto.CreateCaregiverRequest) (*dto.CaregiverResponse, error)
	DeleteCaregiver(ctx context.Context, id int) error
}

type caregiverUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	cache         service.CacheService
	caregiverRepo repository.CaregiverRepository
	invalidator   service.Invalidator
}

func NewCaregiverUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	caregiverRepo repository.CaregiverRepository,
	invalidator service.Invalidator,
) CaregiverUsecase {
	return &caregiverUsecase{
		db:            db,
		log:           log,
		cache:         cache,
		caregiverRepo: caregiverRepo,
		invalidator:   invalidator,
	}
}

// GetAllCaregivers serves the caregiver directory cache-aside under the
// caregiver:all key, which is exactly what CaregiverChanged evicts.
func (u *caregiverUsecase) GetAllCaregivers(ctx context.Context) (*dto.CaregiverListResponse, error) {
	if cached, ok := u.cache.Get(ctx, service.CaregiverAllKey); ok {
		var resp dto.CaregiverListResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", service.CaregiverAllKey)
	}

	caregivers, err := u.caregiverRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list caregivers: %+v", err)
		return nil, err
	}

	resp := &dto.CaregiverListResponse{
		Caregivers: converter.CaregiversToResponses(caregivers),
		Total:      len(caregivers),
	}

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, service.CaregiverAllKey, string(raw), service.AggregateTTL)
	}

	return resp, nil
}

func (u *caregiverUsecase) CreateCaregiver(ctx context.Context, req *dto.CreateCaregiverRequest) (*dto.CaregiverResponse, error) {
	caregiver := &entity.Caregiver{
		Name:             req.Name,
		Contact:          req.Contact,
		AssignedPatients: req.AssignedPatients,
	}

	if err := u.caregiverRepo.Create(ctx, u.db, caregiver); err != nil {
		u.log.Warnf("Failed to create caregiver: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, service.CaregiverChanged)

	return converter.CaregiverToResponse(caregiver), nil
}

func (u *caregiverUsecase) DeleteCaregiver(ctx context.Context, id int) error {
	affected, err := u.caregiverRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete caregiver %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCaregiverNotFound
	}

	u.invalidator.Invalidate(ctx, service.CaregiverChanged)

	return nil
}
