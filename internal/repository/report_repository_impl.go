package repository

import (
	"context"

	"go-eldercare-backend/internal/domain/entity"
	domainRepo "go-eldercare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

// AdherenceByPatient aggregates reminder outcomes per patient. Patients
// without reminders still appear with zero counts (LEFT JOIN + NULLIF guard
// against division by zero).
func (r *reportRepository) AdherenceByPatient(ctx context.Context, db *gorm.DB) ([]domainRepo.AdherenceReportRow, error) {
	var rows []domainRepo.AdherenceReportRow
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Select(`
			patients.id as patient_id,
			patients.name,
			COUNT(reminders.id) as total_reminders,
			COUNT(CASE WHEN reminders.status = ? THEN 1 END) as missed_count,
			COALESCE(ROUND(COUNT(CASE WHEN reminders.status = ? THEN 1 END)::numeric / NULLIF(COUNT(reminders.id), 0) * 100, 2), 0) as adherence_percent
		`, string(entity.ReminderStatusMissed), string(entity.ReminderStatusDone)).
		Joins("LEFT JOIN reminders ON reminders.patient_id = patients.id").
		Group("patients.id, patients.name").
		Order("patients.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
