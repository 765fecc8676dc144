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

type FamilyUsecase interface {
	GetAllFamilyMembers(ctx context.Context) (*dto.FamilyMemberListResponse, error)
	CreateFamilyMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	DeleteFamilyMember(ctx context.Context, id int) error
}

type familyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cache       service.CacheService
	familyRepo  repository.FamilyRepository
	invalidator service.Invalidator
}

func NewFamilyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	familyRepo repository.FamilyRepository,
	invalidator service.Invalidator,
) FamilyUsecase {
	return &familyUsecase{
		db:          db,
		log:         log,
		cache:       cache,
		familyRepo:  familyRepo,
		invalidator: invalidator,
	}
}

func (u *familyUsecase) GetAllFamilyMembers(ctx context.Context) (*dto.FamilyMemberListResponse, error) {
	if cached, ok := u.cache.Get(ctx, service.FamilyAllKey); ok {
		var resp dto.FamilyMemberListResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", service.FamilyAllKey)
	}

	members, err := u.familyRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list family members: %+v", err)
		return nil, err
	}

	resp := &dto.FamilyMemberListResponse{
		Members: converter.FamilyMembersToResponses(members),
		Total:   len(members),
	}

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, service.FamilyAllKey, string(raw), service.AggregateTTL)
	}

	return resp, nil
}

func (u *familyUsecase) CreateFamilyMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	member := &entity.FamilyMember{
		Name:             req.Name,
		Contact:          req.Contact,
		AssignedPatients: req.AssignedPatients,
	}

	if err := u.familyRepo.Create(ctx, u.db, member); err != nil {
		u.log.Warnf("Failed to create family member: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, service.FamilyChanged)

	return converter.FamilyMemberToResponse(member), nil
}

func (u *familyUsecase) DeleteFamilyMember(ctx context.Context, id int) error {
	affected, err := u.familyRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete family member %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrFamilyMemberNotFound
	}

	u.invalidator.Invalidate(ctx, service.FamilyChanged)

	return nil
}
