package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ChangeKind names a class of source-row mutation. Every write path reports
// its mutation here instead of evicting keys itself.
type ChangeKind string

const (
	PatientChanged        ChangeKind = "patient_changed"
	MedicationChanged     ChangeKind = "medication_changed"
	AppointmentChanged    ChangeKind = "appointment_changed"
	ReminderStatusChanged ChangeKind = "reminder_status_changed"
	CaregiverChanged      ChangeKind = "caregiver_changed"
	FamilyChanged         ChangeKind = "family_changed"
)

// invalidationPrefixes maps each change kind to the key prefixes whose
// derived data it stales. Eviction is prefix-scan based because the writer
// does not know every dependent key (aggregates are keyed per caregiver,
// family and patient). Over-invalidation only costs a recompute;
// under-invalidation serves stale reads, so the mapping errs broad.
var invalidationPrefixes = map[ChangeKind][]string{
	PatientChanged:        {ScheduleKeyPrefix},
	MedicationChanged:     {ScheduleKeyPrefix, AdherenceKeyPrefix},
	AppointmentChanged:    {ScheduleKeyPrefix},
	ReminderStatusChanged: {ScheduleKeyPrefix, AdherenceKeyPrefix, AdminReportsKey},
	CaregiverChanged:      {CaregiverAllKey},
	FamilyChanged:         {FamilyAllKey},
}

// Invalidator is the post-commit hook write paths call after a successful
// store mutation. Implementations never propagate failures to the caller;
// entries an eviction missed self-expire via TTL.
type Invalidator interface {
	Invalidate(ctx context.Context, kind ChangeKind)
}

type InvalidationService struct {
	cache CacheService
	log   *logrus.Logger
}

func NewInvalidationService(cache CacheService, log *logrus.Logger) *InvalidationService {
	return &InvalidationService{
		cache: cache,
		log:   log,
	}
}

// Invalidate evicts every cached view derived from rows the change kind
// touches. Best-effort: scan and delete failures are logged inside the
// cache service and never surface here.
func (s *InvalidationService) Invalidate(ctx context.Context, kind ChangeKind) {
	prefixes, ok := invalidationPrefixes[kind]
	if !ok {
		s.log.Warnf("Unknown change kind %q, no cache entries evicted", kind)
		return
	}

	for _, prefix := range prefixes {
		keys := s.cache.KeysByPrefix(ctx, prefix)
		if len(keys) == 0 {
			continue
		}
		s.cache.Delete(ctx, keys...)
		s.log.Debugf("Evicted %d cache keys for prefix %s (%s)", len(keys), prefix, kind)
	}
}
