package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrCaregiverNotFound    = errors.New("caregiver not found")
	ErrFamilyMemberNotFound = errors.New("family member not found")
)

// Cap on concurrent per-patient materializations inside one aggregate
// request.
const aggregateFanOutLimit = 4

// AggregateScheduleUsecase builds the caregiver and family dashboard views:
// one daily schedule per assigned patient, fanned out concurrently and
// cached as a whole.
type AggregateScheduleUsecase interface {
	GetCaregiverSchedules(ctx context.Context, caregiverID int) (*dto.AggregateScheduleResponse, error)
	GetFamilySchedules(ctx context.Context, familyID int) (*dto.AggregateScheduleResponse, error)
}

type aggregateScheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cache           service.CacheService
	caregiverRepo   repository.CaregiverRepository
	familyRepo      repository.FamilyRepository
	scheduleUsecase ScheduleUsecase
}

func NewAggregateScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	caregiverRepo repository.CaregiverRepository,
	familyRepo repository.FamilyRepository,
	scheduleUsecase ScheduleUsecase,
) AggregateScheduleUsecase {
	return &aggregateScheduleUsecase{
		db:              db,
		log:             log,
		cache:           cache,
		caregiverRepo:   caregiverRepo,
		familyRepo:      familyRepo,
		scheduleUsecase: scheduleUsecase,
	}
}

func (u *aggregateScheduleUsecase) GetCaregiverSchedules(ctx context.Context, caregiverID int) (*dto.AggregateScheduleResponse, error) {
	caregiver, err := u.caregiverRepo.FindByID(ctx, u.db, caregiverID)
	if err != nil {
		u.log.Warnf("Failed to load caregiver %d: %+v", caregiverID, err)
		return nil, fmt.Errorf("load caregiver %d: %w", caregiverID, err)
	}
	if caregiver == nil {
		return nil, ErrCaregiverNotFound
	}

	return u.aggregate(ctx, service.CaregiverKey(caregiverID), caregiver.AssignedPatientIDs())
}

func (u *aggregateScheduleUsecase) GetFamilySchedules(ctx context.Context, familyID int) (*dto.AggregateScheduleResponse, error) {
	member, err := u.familyRepo.FindByID(ctx, u.db, familyID)
	if err != nil {
		u.log.Warnf("Failed to load family member %d: %+v", familyID, err)
		return nil, fmt.Errorf("load family member %d: %w", familyID, err)
	}
	if member == nil {
		return nil, ErrFamilyMemberNotFound
	}

	return u.aggregate(ctx, service.FamilyKey(familyID), member.AssignedPatientIDs())
}

// aggregate materializes one schedule per assigned patient. A patient whose
// materialization fails is excluded from the response rather than failing
// the whole request; the closures always return nil so one bad patient
// cannot cancel the rest of the group.
func (u *aggregateScheduleUsecase) aggregate(ctx context.Context, cacheKey string, patientIDs []int) (*dto.AggregateScheduleResponse, error) {
	if cached, ok := u.cache.Get(ctx, cacheKey); ok {
		var resp dto.AggregateScheduleResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", cacheKey)
	}

	results := make([]*dto.DailyScheduleResponse, len(patientIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(aggregateFanOutLimit)
	for i, patientID := range patientIDs {
		i, patientID := i, patientID
		g.Go(func() error {
			schedule, err := u.scheduleUsecase.GetDailySchedule(gctx, patientID)
			if err != nil {
				u.log.Warnf("Excluding patient %d from aggregate: %+v", patientID, err)
				return nil
			}
			results[i] = schedule
			return nil
		})
	}
	g.Wait()

	blocks := make([]dto.PatientScheduleBlock, 0, len(patientIDs))
	for i, schedule := range results {
		if schedule == nil {
			continue
		}
		blocks = append(blocks, dto.PatientScheduleBlock{
			PatientID: patientIDs[i],
			Schedule:  *schedule,
		})
	}

	resp := &dto.AggregateScheduleResponse{
		Schedules: blocks,
		Total:     len(blocks),
	}

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, cacheKey, string(raw), service.AggregateTTL)
	}

	return resp, nil
}
