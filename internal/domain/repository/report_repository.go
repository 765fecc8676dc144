package repository

import (
	"context"

	"gorm.io/gorm"
)

// AdherenceReportRow is one aggregated row of the admin report: reminder
// totals and adherence percentage per patient.
type AdherenceReportRow struct {
	PatientID        int     `json:"patient_id"`
	Name             string  `json:"name"`
	TotalReminders   int     `json:"total_reminders"`
	MissedCount      int     `json:"missed_count"`
	AdherencePercent float64 `json:"adherence_percent"`
}

type ReportRepository interface {
	AdherenceByPatient(ctx context.Context, db *gorm.DB) ([]AdherenceReportRow, error)
}
