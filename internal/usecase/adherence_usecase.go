package usecase

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Rule-based risk model constants. Thresholds and tip texts are fixed, not
// configurable.
const (
	adherenceLookback     = 30 * 24 * time.Hour
	adherenceMinReminders = 10
	adherenceTailSize     = 7
	adherenceK            = 0.1

	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.4

	coldStartRisk = 0.5

	tipColdStart  = "Start tracking more reminders for better insights!"
	tipHighRisk   = "High risk! Pair Metformin with your morning walk for better routine."
	tipMediumRisk = "Medium risk. Set a phone alarm 10 mins early."
	tipLowRisk    = "Great job! Keep the streak—reward yourself with a favorite tea."
)

// AdherenceUsecase scores the likelihood of future missed doses from recent
// reminder history. It never fails user-visibly: any store problem yields
// the cold-start fallback so the dashboard always renders.
type AdherenceUsecase interface {
	PredictAdherence(ctx context.Context, patientID int) (*dto.AdherenceResponse, error)
}

type adherenceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cache        service.CacheService
	reminderRepo repository.ReminderRepository
	now          func() time.Time
}

func NewAdherenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	reminderRepo repository.ReminderRepository,
) AdherenceUsecase {
	return &adherenceUsecase{
		db:           db,
		log:          log,
		cache:        cache,
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

func (u *adherenceUsecase) PredictAdherence(ctx context.Context, patientID int) (*dto.AdherenceResponse, error) {
	key := service.AdherenceKey(patientID)

	if cached, ok := u.cache.Get(ctx, key); ok {
		var resp dto.AdherenceResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", key)
	}

	since := u.now().Add(-adherenceLookback)
	reminders, err := u.reminderRepo.FindRecentByPatient(ctx, u.db, patientID, since)
	if err != nil {
		u.log.Warnf("Adherence history unavailable for patient %d, serving fallback: %+v", patientID, err)
		return coldStartPrediction(), nil
	}

	resp := predict(reminders)

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, key, string(raw), service.AdherenceTTL)
	}

	return resp, nil
}

// predict applies the fixed rule model: the missed fraction of the most
// recent (up to) 7 reminders scaled by total volume, squashed through a
// sigmoid and rounded to 2 decimals.
func predict(reminders []entity.Reminder) *dto.AdherenceResponse {
	total := len(reminders)
	if total < adherenceMinReminders {
		return coldStartPrediction()
	}

	tail := reminders
	if total > adherenceTailSize {
		tail = reminders[total-adherenceTailSize:]
	}

	missedRate := 0.0
	if len(tail) > 0 {
		missed := 0
		for _, r := range tail {
			if r.Status == entity.ReminderStatusMissed {
				missed++
			}
		}
		missedRate = float64(missed) / float64(len(tail))
	}

	linear := missedRate * float64(total) * adherenceK
	risk := 1 / (1 + math.Exp(-linear))
	risk = math.Round(risk*100) / 100

	var tip string
	switch {
	case risk > highRiskThreshold:
		tip = tipHighRisk
	case risk > mediumRiskThreshold:
		tip = tipMediumRisk
	default:
		tip = tipLowRisk
	}

	return &dto.AdherenceResponse{Risk: risk, Tip: tip}
}

func coldStartPrediction() *dto.AdherenceResponse {
	return &dto.AdherenceResponse{Risk: coldStartRisk, Tip: tipColdStart}
}
