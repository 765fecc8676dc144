package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-eldercare-backend/internal/delivery/dto"
	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/response"
	"go-eldercare-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type CaregiverHandler struct {
	caregiverUsecase usecase.CaregiverUsecase
	aggregateUsecase usecase.AggregateScheduleUsecase
	validator        *validator.CustomValidator
}

func NewCaregiverHandler(
	caregiverUsecase usecase.CaregiverUsecase,
	aggregateUsecase usecase.AggregateScheduleUsecase,
	validator *validator.CustomValidator,
) *CaregiverHandler {
	return &CaregiverHandler{
		caregiverUsecase: caregiverUsecase,
		aggregateUsecase: aggregateUsecase,
		validator:        validator,
	}
}

func (h *CaregiverHandler) GetAllCaregivers(w http.ResponseWriter, r *http.Request) {
	result, err := h.caregiverUsecase.GetAllCaregivers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list caregivers")
		return
	}

	response.Success(w, http.StatusOK, "Caregivers retrieved successfully", result)
}

func (h *CaregiverHandler) CreateCaregiver(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.caregiverUsecase.CreateCaregiver(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create caregiver")
		return
	}

	response.Success(w, http.StatusCreated, "Caregiver added!", result)
}

func (h *CaregiverHandler) DeleteCaregiver(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid caregiver ID", nil)
		return
	}

	if err := h.caregiverUsecase.DeleteCaregiver(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCaregiverNotFound) {
			response.NotFound(w, "Caregiver not found")
			return
		}
		response.InternalServerError(w, "Failed to delete caregiver")
		return
	}

	response.Success(w, http.StatusOK, "Caregiver removed!", nil)
}

// GetCaregiverSchedules returns today's schedule for every patient assigned
// to the caregiver.
func (h *CaregiverHandler) GetCaregiverSchedules(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid caregiver ID", nil)
		return
	}

	result, err := h.aggregateUsecase.GetCaregiverSchedules(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCaregiverNotFound) {
			response.NotFound(w, "Caregiver not found")
			return
		}
		response.InternalServerError(w, "Failed to load caregiver schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", result)
}
