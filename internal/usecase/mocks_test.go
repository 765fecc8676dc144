package usecase

import (
	"context"
	"io"
	"time"

	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The mocks ignore the *gorm.DB argument; usecases under test are
// constructed with a nil DB and never touch it directly.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockCache struct {
	store   map[string]string
	setKeys []string
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m.store[key]
	return v, ok
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	m.store[key] = value
	m.setKeys = append(m.setKeys, key)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(m.store, key)
		m.deleted = append(m.deleted, key)
	}
}

func (m *mockCache) KeysByPrefix(ctx context.Context, prefix string) []string {
	var keys []string
	for key := range m.store {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	return keys
}

type mockInvalidator struct {
	kinds []service.ChangeKind
}

func (m *mockInvalidator) Invalidate(ctx context.Context, kind service.ChangeKind) {
	m.kinds = append(m.kinds, kind)
}

type mockPatientRepo struct {
	patients map[int]*entity.Patient
	findErr  error
}

func (m *mockPatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if m.patients == nil {
		m.patients = make(map[int]*entity.Patient)
	}
	patient.ID = len(m.patients) + 1
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Patient, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.patients[id], nil
}

func (m *mockPatientRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	result := make([]entity.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPatientRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := m.patients[id]; !ok {
		return 0, nil
	}
	delete(m.patients, id)
	return 1, nil
}

type mockMedicationRepo struct {
	medications []entity.Medication
	findErr     error
}

func (m *mockMedicationRepo) Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error {
	medication.ID = len(m.medications) + 1
	m.medications = append(m.medications, *medication)
	return nil
}

func (m *mockMedicationRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Medication, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var result []entity.Medication
	for _, med := range m.medications {
		if med.PatientID == patientID {
			result = append(result, med)
		}
	}
	return result, nil
}

func (m *mockMedicationRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Medication, error) {
	return m.medications, nil
}

func (m *mockMedicationRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	for i, med := range m.medications {
		if med.ID == id {
			m.medications = append(m.medications[:i], m.medications[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockAppointmentRepo struct {
	appointments []entity.Appointment
	findErr      error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = len(m.appointments) + 1
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *mockAppointmentRepo) FindByPatientAndRange(ctx context.Context, db *gorm.DB, patientID int, from, to time.Time) ([]entity.Appointment, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var result []entity.Appointment
	for _, appt := range m.appointments {
		if appt.PatientID == patientID && !appt.ScheduledAt.Before(from) && appt.ScheduledAt.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	for i, appt := range m.appointments {
		if appt.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockReminderRepo struct {
	reminders   []entity.Reminder
	nextID      int
	createErr   error
	findErr     error
	markDoneErr error
}

func (m *mockReminderRepo) Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	reminder.ID = m.nextID
	m.reminders = append(m.reminders, *reminder)
	return nil
}

func (m *mockReminderRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for i := range m.reminders {
		if m.reminders[i].ID == id {
			r := m.reminders[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockReminderRepo) FindByPatientAndRange(ctx context.Context, db *gorm.DB, patientID int, from, to time.Time) ([]entity.Reminder, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var result []entity.Reminder
	for _, r := range m.reminders {
		if r.PatientID == patientID && !r.AlertTime.Before(from) && r.AlertTime.Before(to) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReminderRepo) FindRecentByPatient(ctx context.Context, db *gorm.DB, patientID int, since time.Time) ([]entity.Reminder, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var result []entity.Reminder
	for _, r := range m.reminders {
		if r.PatientID == patientID && !r.AlertTime.Before(since) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReminderRepo) MarkDone(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if m.markDoneErr != nil {
		return 0, m.markDoneErr
	}
	for i := range m.reminders {
		if m.reminders[i].ID == id && m.reminders[i].Status == entity.ReminderStatusPending {
			m.reminders[i].Status = entity.ReminderStatusDone
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockReminderRepo) MarkOverdueMissed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	var affected int64
	for i := range m.reminders {
		if m.reminders[i].Status == entity.ReminderStatusPending && m.reminders[i].AlertTime.Before(now) {
			m.reminders[i].Status = entity.ReminderStatusMissed
			affected++
		}
	}
	return affected, nil
}

type mockCaregiverRepo struct {
	caregivers map[int]*entity.Caregiver
	findErr    error
}

func (m *mockCaregiverRepo) Create(ctx context.Context, db *gorm.DB, caregiver *entity.Caregiver) error {
	if m.caregivers == nil {
		m.caregivers = make(map[int]*entity.Caregiver)
	}
	caregiver.ID = len(m.caregivers) + 1
	m.caregivers[caregiver.ID] = caregiver
	return nil
}

func (m *mockCaregiverRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Caregiver, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.caregivers[id], nil
}

func (m *mockCaregiverRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Caregiver, error) {
	result := make([]entity.Caregiver, 0, len(m.caregivers))
	for _, c := range m.caregivers {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCaregiverRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := m.caregivers[id]; !ok {
		return 0, nil
	}
	delete(m.caregivers, id)
	return 1, nil
}

type mockFamilyRepo struct {
	members map[int]*entity.FamilyMember
	findErr error
}

func (m *mockFamilyRepo) Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	if m.members == nil {
		m.members = make(map[int]*entity.FamilyMember)
	}
	member.ID = len(m.members) + 1
	m.members[member.ID] = member
	return nil
}

func (m *mockFamilyRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.FamilyMember, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.members[id], nil
}

func (m *mockFamilyRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.FamilyMember, error) {
	result := make([]entity.FamilyMember, 0, len(m.members))
	for _, member := range m.members {
		result = append(result, *member)
	}
	return result, nil
}

func (m *mockFamilyRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := m.members[id]; !ok {
		return 0, nil
	}
	delete(m.members, id)
	return 1, nil
}
