package usecase

import (
	"context"
	"errors"

	"go-eldercare-backend/internal/converter"
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicationNotFound = errors.New("medication not found")

type MedicationUsecase interface {
	GetAllMedications(ctx context.Context) (*dto.MedicationListResponse, error)
	CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedication(ctx context.Context, id int) error
}

type medicationUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	patientRepo    repository.PatientRepository
	medicationRepo repository.MedicationRepository
	invalidator    service.Invalidator
}

func NewMedicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	medicationRepo repository.MedicationRepository,
	invalidator service.Invalidator,
) MedicationUsecase {
	return &medicationUsecase{
		db:             db,
		log:            log,
		patientRepo:    patientRepo,
		medicationRepo: medicationRepo,
		invalidator:    invalidator,
	}
}

func (u *medicationUsecase) GetAllMedications(ctx context.Context) (*dto.MedicationListResponse, error) {
	medications, err := u.medicationRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list medications: %+v", err)
		return nil, err
	}

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}

func (u *medicationUsecase) CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	medication := &entity.Medication{
		PatientID:    req.PatientID,
		DrugName:     req.DrugName,
		Dosage:       req.Dosage,
		TimeSchedule: req.TimeSchedule,
	}

	if err := u.medicationRepo.Create(ctx, u.db, medication); err != nil {
		u.log.Warnf("Failed to create medication: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, service.MedicationChanged)

	return converter.MedicationToResponse(medication), nil
}

// DeleteMedication removes the medication and, via the FK cascade, its
// reminders. Schedules and adherence predictions both depend on those rows,
// hence MedicationChanged.
func (u *medicationUsecase) DeleteMedication(ctx context.Context, id int) error {
	affected, err := u.medicationRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete medication %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrMedicationNotFound
	}

	u.invalidator.Invalidate(ctx, service.MedicationChanged)

	return nil
}
