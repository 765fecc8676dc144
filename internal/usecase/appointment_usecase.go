package usecase

import (
	"context"
	"errors"
	"time"

	"go-eldercare-backend/internal/converter"
	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/domain/entity"
	"go-eldercare-backend/internal/domain/repository"
	"go-eldercare-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentAt = errors.New("invalid scheduled_at, use RFC 3339")
)

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	caregiverRepo   repository.CaregiverRepository
	appointmentRepo repository.AppointmentRepository
	invalidator     service.Invalidator
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	caregiverRepo repository.CaregiverRepository,
	appointmentRepo repository.AppointmentRepository,
	invalidator service.Invalidator,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		caregiverRepo:   caregiverRepo,
		appointmentRepo: appointmentRepo,
		invalidator:     invalidator,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidAppointmentAt
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	caregiver, err := u.caregiverRepo.FindByID(ctx, u.db, req.CaregiverID)
	if err != nil {
		u.log.Warnf("Failed to load caregiver %d: %+v", req.CaregiverID, err)
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrCaregiverNotFound
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		CaregiverID: req.CaregiverID,
		ScheduledAt: scheduledAt,
		Description: req.Description,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, service.AppointmentChanged)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	affected, err := u.appointmentRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.invalidator.Invalidate(ctx, service.AppointmentChanged)

	return nil
}
