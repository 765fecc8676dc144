package converter

import (
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
)

func CaregiverToResponse(caregiver *entity.Caregiver) *dto.CaregiverResponse {
	if caregiver == nil {
		return nil
	}

	return &dto.CaregiverResponse{
		ID:               caregiver.ID,
		Name:             caregiver.Name,
		Contact:          caregiver.Contact,
		AssignedPatients: caregiver.AssignedPatients,
		CreatedAt:        caregiver.CreatedAt,
		UpdatedAt:        caregiver.UpdatedAt,
	}
}

func CaregiversToResponses(caregivers []entity.Caregiver) []dto.CaregiverResponse {
	responses := make([]dto.CaregiverResponse, len(caregivers))
	for i := range caregivers {
		responses[i] = *CaregiverToResponse(&caregivers[i])
	}
	return responses
}

func FamilyMemberToResponse(member *entity.FamilyMember) *dto.FamilyMemberResponse {
	if member == nil {
		return nil
	}

	return &dto.FamilyMemberResponse{
		ID:               member.ID,
		Name:             member.Name,
		Contact:          member.Contact,
		AssignedPatients: member.AssignedPatients,
		CreatedAt:        member.CreatedAt,
		UpdatedAt:        member.UpdatedAt,
	}
}

func FamilyMembersToResponses(members []entity.FamilyMember) []dto.FamilyMemberResponse {
	responses := make([]dto.FamilyMemberResponse, len(members))
	for i := range members {
		responses[i] = *FamilyMemberToResponse(&members[i])
	}
	return responses
}
