package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-eldercare-backend/internal/converter"
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type ScheduleUsecase interface {
	// GetDailySchedule returns the patient's materialized schedule for
	// today. A patient with nothing due gets an empty entry list, not an
	// error; an unknown patient gets ErrPatientNotFound; a store failure
	// propagates wrapped so callers can tell the two apart.
	GetDailySchedule(ctx context.Context, patientID int) (*dto.DailyScheduleResponse, error)
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cache           service.CacheService
	patientRepo     repository.PatientRepository
	medicationRepo  repository.MedicationRepository
	appointmentRepo repository.AppointmentRepository
	reminderRepo    repository.ReminderRepository
	now             func() time.Time
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CacheService,
	patientRepo repository.PatientRepository,
	medicationRepo repository.MedicationRepository,
	appointmentRepo repository.AppointmentRepository,
	reminderRepo repository.ReminderRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:              db,
		log:             log,
		cache:           cache,
		patientRepo:     patientRepo,
		medicationRepo:  medicationRepo,
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
		now:             time.Now,
	}
}

func (u *scheduleUsecase) GetDailySchedule(ctx context.Context, patientID int) (*dto.DailyScheduleResponse, error) {
	key := service.ScheduleKey(patientID)

	if cached, ok := u.cache.Get(ctx, key); ok {
		var resp dto.DailyScheduleResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Corrupt cache entry for %s, recomputing", key)
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", patientID, err)
		return nil, fmt.Errorf("load patient %d: %w", patientID, err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	day := u.now()
	entries, err := u.materializeDay(ctx, patientID, day)
	if err != nil {
		return nil, err
	}

	resp := converter.ScheduleEntriesToResponse(patientID, day, entries)

	if raw, err := json.Marshal(resp); err == nil {
		u.cache.Set(ctx, key, string(raw), service.ScheduleTTL)
	}

	return resp, nil
}

// materializeDay derives the ordered schedule for one day: every medication
// dose due that day joined with its reminder, plus every appointment.
// Reminders are generated lazily here: a dose without a reminder row gets a
// PENDING one created at its alert time, and if that insert fails the dose
// still appears with no reminder ID so the view stays renderable.
func (u *scheduleUsecase) materializeDay(ctx context.Context, patientID int, day time.Time) ([]entity.ScheduleEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	medications, err := u.medicationRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load medications for patient %d: %+v", patientID, err)
		return nil, fmt.Errorf("load medications for patient %d: %w", patientID, err)
	}

	reminders, err := u.reminderRepo.FindByPatientAndRange(ctx, u.db, patientID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to load reminders for patient %d: %+v", patientID, err)
		return nil, fmt.Errorf("load reminders for patient %d: %w", patientID, err)
	}

	byOccurrence := make(map[string]*entity.Reminder, len(reminders))
	for i := range reminders {
		r := &reminders[i]
		byOccurrence[occurrenceKey(r.MedicationID, r.AlertTime)] = r
	}

	entries := make([]entity.ScheduleEntry, 0, len(reminders))

	for i := range medications {
		med := &medications[i]
		for _, doseTime := range med.DoseTimes() {
			alertTime := time.Date(day.Year(), day.Month(), day.Day(),
				doseTime.Hour(), doseTime.Minute(), 0, 0, day.Location())

			reminder := byOccurrence[occurrenceKey(med.ID, alertTime)]
			if reminder == nil {
				reminder = u.generateReminder(ctx, med, alertTime)
			}

			entry := entity.ScheduleEntry{
				Kind:        entity.ScheduleEntryMedication,
				ScheduledAt: alertTime,
				DrugName:    med.DrugName,
				Dosage:      med.Dosage,
				Status:      string(entity.ReminderStatusPending),
			}
			if reminder != nil {
				id := reminder.ID
				entry.ReminderID = &id
				entry.Status = string(reminder.Status)
			}
			entries = append(entries, entry)
		}
	}

	appointments, err := u.appointmentRepo.FindByPatientAndRange(ctx, u.db, patientID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to load appointments for patient %d: %+v", patientID, err)
		return nil, fmt.Errorf("load appointments for patient %d: %w", patientID, err)
	}

	for _, appt := range appointments {
		entries = append(entries, entity.ScheduleEntry{
			Kind:        entity.ScheduleEntryAppointment,
			ScheduledAt: appt.ScheduledAt,
			Description: appt.Description,
			Status:      entity.AppointmentStatusScheduled,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ScheduledAt.Before(entries[j].ScheduledAt)
	})

	return entries, nil
}

// generateReminder creates the PENDING reminder for a dose occurrence that
// has none yet. Insert failures (including the unique-index race with a
// concurrent materialization) leave the dose without a reminder ID for this
// response; the next materialization picks the row up.
func (u *scheduleUsecase) generateReminder(ctx context.Context, med *entity.Medication, alertTime time.Time) *entity.Reminder {
	reminder := &entity.Reminder{
		MedicationID: med.ID,
		PatientID:    med.PatientID,
		AlertTime:    alertTime,
		Status:       entity.ReminderStatusPending,
	}
	if err := u.reminderRepo.Create(ctx, u.db, reminder); err != nil {
		u.log.Warnf("Failed to generate reminder for medication %d at %s: %+v", med.ID, alertTime.Format("15:04"), err)
		return nil
	}
	return reminder
}

func occurrenceKey(medicationID int, alertTime time.Time) string {
	return fmt.Sprintf("%d@%d", medicationID, alertTime.Unix())
}
