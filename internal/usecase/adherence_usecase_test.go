package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/service"
)

func remindersWithStatuses(patientID int, base time.Time, statuses []entity.ReminderStatus) []entity.Reminder {
	reminders := make([]entity.Reminder, len(statuses))
	for i, status := range statuses {
		reminders[i] = entity.Reminder{
			ID:        i + 1,
			PatientID: patientID,
			AlertTime: base.Add(time.Duration(i) * time.Hour),
			Status:    status,
		}
	}
	return reminders
}

func newAdherenceFixture(reminderRepo *mockReminderRepo, cache *mockCache, now time.Time) AdherenceUsecase {
	uc := NewAdherenceUsecase(nil, testLogger(), cache, reminderRepo).(*adherenceUsecase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestPredictAdherence_ColdStartUnderTenReminders(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	statuses := make([]entity.ReminderStatus, 9)
	for i := range statuses {
		statuses[i] = entity.ReminderStatusDone
	}
	reminderRepo := &mockReminderRepo{
		reminders: remindersWithStatuses(1, now.Add(-48*time.Hour), statuses),
	}

	uc := newAdherenceFixture(reminderRepo, newMockCache(), now)

	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Risk != 0.5 {
		t.Errorf("expected cold start risk 0.5, got %v", resp.Risk)
	}
	if resp.Tip != tipColdStart {
		t.Errorf("expected cold start tip, got %q", resp.Tip)
	}
}

func TestPredictAdherence_WorkedExample(t *testing.T) {
	// 10 reminders; last 7 statuses MISSED, MISSED, DONE x5. Missed rate
	// 2/7, scaled by total 10 and k 0.1, sigmoid, rounded: 0.57.
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	statuses := []entity.ReminderStatus{
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
		entity.ReminderStatusMissed,
		entity.ReminderStatusMissed,
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
		entity.ReminderStatusDone,
	}
	reminderRepo := &mockReminderRepo{
		reminders: remindersWithStatuses(1, now.Add(-72*time.Hour), statuses),
	}

	uc := newAdherenceFixture(reminderRepo, newMockCache(), now)

	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Risk != 0.57 {
		t.Errorf("expected risk 0.57, got %v", resp.Risk)
	}
	if resp.Tip != tipMediumRisk {
		t.Errorf("expected medium risk tip, got %q", resp.Tip)
	}
}

func TestPredictAdherence_ZeroMissedRate(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	statuses := make([]entity.ReminderStatus, 12)
	for i := range statuses {
		statuses[i] = entity.ReminderStatusDone
	}
	reminderRepo := &mockReminderRepo{
		reminders: remindersWithStatuses(1, now.Add(-72*time.Hour), statuses),
	}

	uc := newAdherenceFixture(reminderRepo, newMockCache(), now)

	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sigmoid(0) = 0.5, below the medium threshold boundary rule (> 0.4
	// means medium, so exactly 0.5 is medium).
	if resp.Tip != tipMediumRisk {
		t.Errorf("expected medium risk tip at risk %v, got %q", resp.Risk, resp.Tip)
	}
	if resp.Risk != 0.5 {
		t.Errorf("expected risk 0.5 for zero missed rate, got %v", resp.Risk)
	}
}

func TestPredictAdherence_StoreFailureServesFallback(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	reminderRepo := &mockReminderRepo{findErr: errors.New("connection refused")}

	uc := newAdherenceFixture(reminderRepo, newMockCache(), now)

	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if resp.Risk != 0.5 || resp.Tip != tipColdStart {
		t.Errorf("expected cold start fallback, got risk %v tip %q", resp.Risk, resp.Tip)
	}
}

func TestPredictAdherence_FallbackIsNotCached(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	reminderRepo := &mockReminderRepo{findErr: errors.New("connection refused")}
	cache := newMockCache()

	uc := newAdherenceFixture(reminderRepo, cache, now)

	if _, err := uc.PredictAdherence(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.store[service.AdherenceKey(1)]; ok {
		t.Error("fallback prediction must not be cached")
	}
}

func TestPredictAdherence_SuccessfulPredictionIsCached(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	statuses := make([]entity.ReminderStatus, 10)
	for i := range statuses {
		statuses[i] = entity.ReminderStatusDone
	}
	reminderRepo := &mockReminderRepo{
		reminders: remindersWithStatuses(1, now.Add(-72*time.Hour), statuses),
	}
	cache := newMockCache()

	uc := newAdherenceFixture(reminderRepo, cache, now)

	if _, err := uc.PredictAdherence(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.store[service.AdherenceKey(1)]; !ok {
		t.Fatal("expected the prediction to be cached")
	}

	// Second call is served from cache, no extra store read.
	reminderRepo.findErr = errors.New("connection refused")
	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Tip == tipColdStart {
		t.Error("expected the cached prediction, got the fallback")
	}
}

func TestPredictAdherence_LookbackExcludesOldReminders(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	statuses := make([]entity.ReminderStatus, 10)
	for i := range statuses {
		statuses[i] = entity.ReminderStatusDone
	}
	// All reminders predate the 30 day window, so the model sees zero and
	// falls back to cold start.
	reminderRepo := &mockReminderRepo{
		reminders: remindersWithStatuses(1, now.Add(-45*24*time.Hour), statuses),
	}

	uc := newAdherenceFixture(reminderRepo, newMockCache(), now)

	resp, err := uc.PredictAdherence(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Tip != tipColdStart {
		t.Errorf("expected cold start for out-of-window history, got %q", resp.Tip)
	}
}
