package usecase

import (
	"context"

	"go-eldercare-backend/internal/converter"
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	invalidator service.Invalidator
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	invalidator service.Invalidator,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		invalidator: invalidator,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:           req.Name,
		Contact:        req.Contact,
		MedicalHistory: req.MedicalHistory,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, service.PatientChanged)

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes the patient; the FK cascades take medications,
// appointments and reminders with it, then the invalidation evicts every
// schedule view those rows fed.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	affected, err := u.patientRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	u.invalidator.Invalidate(ctx, service.PatientChanged)

	return nil
}
