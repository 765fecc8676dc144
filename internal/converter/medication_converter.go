package converter

import (
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
)

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:           medication.ID,
		PatientID:    medication.PatientID,
		DrugName:     medication.DrugName,
		Dosage:       medication.Dosage,
		TimeSchedule: medication.TimeSchedule,
		CreatedAt:    medication.CreatedAt,
		UpdatedAt:    medication.UpdatedAt,
	}
}

func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i := range medications {
		responses[i] = *MedicationToResponse(&medications[i])
	}
	return responses
}

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		CaregiverID: appointment.CaregiverID,
		ScheduledAt: appointment.ScheduledAt,
		Description: appointment.Description,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
