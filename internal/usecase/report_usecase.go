package usecase

import (
	"context"
	"encoding/json"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportUsecase serves the admin adherence report, cached under
// admin:reports. The sweep's ReminderStatusChanged invalidation clears it
// whenever overdue reminders are promoted.
type ReportUsecase interface {
	GetAdherenceReport(ctx context.Context) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	cache      service.CacheService
	reportRepo repository.ReportRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	reportRepo repository.ReportRepository,
) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		cache:      cache,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) GetAdherenceReport(ctx context.Context) (*dto.ReportResponse, error) {
	if cached, ok := u.cache.Get(ctx, service.AdminReportsKey); ok {
		var resp dto.ReportResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", service.AdminReportsKey)
	}

	rows, err := u.reportRepo.AdherenceByPatient(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to build adherence report: %+v", err)
		return nil, err
	}

	respRows := make([]dto.ReportRowResponse, len(rows))
	for i, row := range rows {
		respRows[i] = dto.ReportRowResponse{
			PatientID:        row.PatientID,
			Name:             row.Name,
			TotalReminders:   row.TotalReminders,
			MissedCount:      row.MissedCount,
			AdherencePercent: row.AdherencePercent,
		}
	}

	resp := &dto.ReportResponse{
		Rows:  respRows,
		Total: len(respRows),
	}

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, service.AdminReportsKey, string(raw), service.ReportTTL)
	}

	return resp, nil
}
