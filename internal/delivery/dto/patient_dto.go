package dto

import "time"

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Contact        string `json:"contact" validate:"max=255"`
	MedicalHistory string `json:"medical_history"`
}

type PatientResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Contact        string    `json:"contact,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
