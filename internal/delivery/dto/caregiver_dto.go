package dto

import "time"

type CreateCaregiverRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	Contact          string `json:"contact" validate:"max=255"`
	AssignedPatients string `json:"assigned_patients"`
}

type CaregiverResponse struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Contact          string    `json:"contact,omitempty"`
	AssignedPatients string    `json:"assigned_patients,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CaregiverListResponse struct {
	Caregivers []CaregiverResponse `json:"caregivers"`
	Total      int                 `json:"total"`
}
