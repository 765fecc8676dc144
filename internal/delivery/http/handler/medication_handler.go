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

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) GetAllMedications(w http.ResponseWriter, r *http.Request) {
	result, err := h.medicationUsecase.GetAllMedications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", result)
}

func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.medicationUsecase.CreateMedication(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to create medication")
		return
	}

	response.Success(w, http.StatusCreated, "Medication added!", result)
}

func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	if err := h.medicationUsecase.DeleteMedication(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrMedicationNotFound) {
			response.NotFound(w, "Medication not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medication")
		return
	}

	response.Success(w, http.StatusOK, "Medication removed!", nil)
}
