package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/service"
)

func newScheduleFixture(
	patientRepo *mockPatientRepo,
	medicationRepo *mockMedicationRepo,
	appointmentRepo *mockAppointmentRepo,
	reminderRepo *mockReminderRepo,
	cache *mockCache,
	now time.Time,
) *scheduleUsecase {
	uc := NewScheduleUsecase(nil, testLogger(), cache, patientRepo, medicationRepo, appointmentRepo, reminderRepo).(*scheduleUsecase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetDailySchedule_UnknownPatient(t *testing.T) {
	uc := newScheduleFixture(
		&mockPatientRepo{},
		&mockMedicationRepo{},
		&mockAppointmentRepo{},
		&mockReminderRepo{},
		newMockCache(),
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	)

	_, err := uc.GetDailySchedule(context.Background(), 42)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestGetDailySchedule_EmptyScheduleIsNotAnError(t *testing.T) {
	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	uc := newScheduleFixture(
		patientRepo,
		&mockMedicationRepo{},
		&mockAppointmentRepo{},
		&mockReminderRepo{},
		newMockCache(),
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 || len(resp.Entries) != 0 {
		t.Fatalf("expected empty schedule, got %d entries", resp.Total)
	}
}

func TestGetDailySchedule_StoreFailureIsNotNotFound(t *testing.T) {
	patientRepo := &mockPatientRepo{findErr: errors.New("connection refused")}
	uc := newScheduleFixture(
		patientRepo,
		&mockMedicationRepo{},
		&mockAppointmentRepo{},
		&mockReminderRepo{},
		newMockCache(),
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	)

	_, err := uc.GetDailySchedule(context.Background(), 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrPatientNotFound) {
		t.Fatal("store failure must not masquerade as not found")
	}
}

func TestGetDailySchedule_MaterializesSortedEntries(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	medicationRepo := &mockMedicationRepo{medications: []entity.Medication{
		{ID: 10, PatientID: 1, DrugName: "Metformin", Dosage: "500mg", TimeSchedule: "08:00,20:00"},
	}}
	appointmentRepo := &mockAppointmentRepo{appointments: []entity.Appointment{
		{ID: 5, PatientID: 1, CaregiverID: 2, ScheduledAt: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC), Description: "Checkup"},
	}}
	reminderRepo := &mockReminderRepo{}

	uc := newScheduleFixture(patientRepo, medicationRepo, appointmentRepo, reminderRepo, newMockCache(), now)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 {
		t.Fatalf("expected 3 entries, got %d", resp.Total)
	}
	wantTimes := []string{"08:00", "10:30", "20:00"}
	for i, want := range wantTimes {
		if resp.Entries[i].Time != want {
			t.Errorf("entry %d: expected time %s, got %s", i, want, resp.Entries[i].Time)
		}
	}
	if resp.Entries[1].Kind != string(entity.ScheduleEntryAppointment) {
		t.Errorf("expected appointment in the middle, got %s", resp.Entries[1].Kind)
	}
	if resp.Entries[1].Status != entity.AppointmentStatusScheduled {
		t.Errorf("expected SCHEDULED appointment status, got %s", resp.Entries[1].Status)
	}
}

func TestGetDailySchedule_GeneratesRemindersLazily(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	medicationRepo := &mockMedicationRepo{medications: []entity.Medication{
		{ID: 10, PatientID: 1, DrugName: "Metformin", TimeSchedule: "08:00,20:00"},
	}}
	reminderRepo := &mockReminderRepo{}

	uc := newScheduleFixture(patientRepo, medicationRepo, &mockAppointmentRepo{}, reminderRepo, newMockCache(), now)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reminderRepo.reminders) != 2 {
		t.Fatalf("expected 2 generated reminders, got %d", len(reminderRepo.reminders))
	}
	for _, r := range reminderRepo.reminders {
		if r.Status != entity.ReminderStatusPending {
			t.Errorf("generated reminder should be PENDING, got %s", r.Status)
		}
	}
	for _, e := range resp.Entries {
		if e.ReminderID == nil {
			t.Errorf("entry at %s missing reminder ID", e.Time)
		}
	}
}

func TestGetDailySchedule_ExistingReminderNotRegenerated(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	alertTime := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	medicationRepo := &mockMedicationRepo{medications: []entity.Medication{
		{ID: 10, PatientID: 1, DrugName: "Metformin", TimeSchedule: "08:00"},
	}}
	reminderRepo := &mockReminderRepo{
		nextID: 1,
		reminders: []entity.Reminder{
			{ID: 1, MedicationID: 10, PatientID: 1, AlertTime: alertTime, Status: entity.ReminderStatusDone},
		},
	}

	uc := newScheduleFixture(patientRepo, medicationRepo, &mockAppointmentRepo{}, reminderRepo, newMockCache(), now)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reminderRepo.reminders) != 1 {
		t.Fatalf("expected no new reminder, store has %d", len(reminderRepo.reminders))
	}
	if resp.Entries[0].Status != string(entity.ReminderStatusDone) {
		t.Errorf("expected DONE status carried through, got %s", resp.Entries[0].Status)
	}
}

func TestGetDailySchedule_ReminderInsertFailureDegrades(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	medicationRepo := &mockMedicationRepo{medications: []entity.Medication{
		{ID: 10, PatientID: 1, DrugName: "Metformin", TimeSchedule: "08:00"},
	}}
	reminderRepo := &mockReminderRepo{createErr: errors.New("duplicate key")}

	uc := newScheduleFixture(patientRepo, medicationRepo, &mockAppointmentRepo{}, reminderRepo, newMockCache(), now)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected the dose to still render, got %d entries", resp.Total)
	}
	if resp.Entries[0].ReminderID != nil {
		t.Error("expected nil reminder ID when the insert fails")
	}
	if resp.Entries[0].Status != string(entity.ReminderStatusPending) {
		t.Errorf("expected PENDING fallback status, got %s", resp.Entries[0].Status)
	}
}

func TestGetDailySchedule_CacheHitIsByteStable(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	medicationRepo := &mockMedicationRepo{medications: []entity.Medication{
		{ID: 10, PatientID: 1, DrugName: "Metformin", TimeSchedule: "08:00"},
	}}
	cache := newMockCache()

	uc := newScheduleFixture(patientRepo, medicationRepo, &mockAppointmentRepo{}, &mockReminderRepo{}, cache, now)

	if _, err := uc.GetDailySchedule(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := service.ScheduleKey(1)
	cachedFirst, ok := cache.store[key]
	if !ok {
		t.Fatal("expected the schedule to be cached after a miss")
	}

	// Mutate the source rows. The cached view must win until invalidated.
	medicationRepo.medications[0].TimeSchedule = "08:00,20:00"

	if _, err := uc.GetDailySchedule(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.store[key] != cachedFirst {
		t.Error("cached entry changed without a write or TTL expiry")
	}
	if len(cache.setKeys) != 1 {
		t.Errorf("expected a single cache write, got %d", len(cache.setKeys))
	}
}

func TestGetDailySchedule_CorruptCacheEntryRecomputes(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	patientRepo := &mockPatientRepo{patients: map[int]*entity.Patient{
		1: {ID: 1, Name: "Agnes"},
	}}
	cache := newMockCache()
	cache.store[service.ScheduleKey(1)] = "{not json"

	uc := newScheduleFixture(patientRepo, &mockMedicationRepo{}, &mockAppointmentRepo{}, &mockReminderRepo{}, cache, now)

	resp, err := uc.GetDailySchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PatientID != 1 {
		t.Fatalf("expected recomputed response for patient 1, got %d", resp.PatientID)
	}
}
