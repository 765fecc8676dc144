package dto

import "time"

type CreateMedicationRequest struct {
	PatientID    int    `json:"patient_id" validate:"required,gt=0"`
	DrugName     string `json:"drug_name" validate:"required,max=255"`
	Dosage       string `json:"dosage" validate:"max=100"`
	TimeSchedule string `json:"time_schedule" validate:"max=255"`
}

type MedicationResponse struct {
	ID           int       `json:"id"`
	PatientID    int       `json:"patient_id"`
	DrugName     string    `json:"drug_name"`
	Dosage       string    `json:"dosage,omitempty"`
	TimeSchedule string    `json:"time_schedule,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}
