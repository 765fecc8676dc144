package service

import (
	"fmt"
	"time"
)

// Cache key namespaces. Every derived view lives under one of these
// prefixes; the invalidation table in invalidation_service.go is written in
// terms of them.
const (
	ScheduleKeyPrefix  = "schedule:"
	CaregiverKeyPrefix = "caregiver:"
	FamilyKeyPrefix    = "family:"
	AdherenceKeyPrefix = "adherence:"

	CaregiverAllKey = "caregiver:all"
	FamilyAllKey    = "family:all"
	AdminReportsKey = "admin:reports"
)

// TTLs per derived-view kind. Aggregates fan out across multiple patients
// and go stale faster, hence the shorter expiry.
const (
	ScheduleTTL  = time.Hour
	AggregateTTL = 30 * time.Minute
	AdherenceTTL = time.Hour
	ReportTTL    = time.Hour
)

func ScheduleKey(patientID int) string {
	return fmt.Sprintf("%s%d", ScheduleKeyPrefix, patientID)
}

func CaregiverKey(caregiverID int) string {
	return fmt.Sprintf("%s%d", CaregiverKeyPrefix, caregiverID)
}

func FamilyKey(familyID int) string {
	return fmt.Sprintf("%s%d", FamilyKeyPrefix, familyID)
}

func AdherenceKey(patientID int) string {
	return fmt.Sprintf("%s%d", AdherenceKeyPrefix, patientID)
}
