package converter

import (
	"time"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
)

// ScheduleEntriesToResponse converts materialized schedule entries into the
// daily schedule payload. Entries are assumed already sorted by time.
func ScheduleEntriesToResponse(patientID int, day time.Time, entries []entity.ScheduleEntry) *dto.DailyScheduleResponse {
	rows := make([]dto.ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		rows[i] = dto.ScheduleEntryResponse{
			Kind:        string(e.Kind),
			Time:        e.ScheduledAt.Format("15:04"),
			DrugName:    e.DrugName,
			Dosage:      e.Dosage,
			Description: e.Description,
			Status:      e.Status,
			ReminderID:  e.ReminderID,
		}
	}

	return &dto.DailyScheduleResponse{
		PatientID: patientID,
		Date:      day.Format("2006-01-02"),
		Entries:   rows,
		Total:     len(rows),
	}
}
