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

type FamilyHandler struct {
	familyUsecase    usecase.FamilyUsecase
	aggregateUsecase usecase.AggregateScheduleUsecase
	validator        *validator.CustomValidator
}

func NewFamilyHandler(
	familyUsecase usecase.FamilyUsecase,
	aggregateUsecase usecase.AggregateScheduleUsecase,
	validator *validator.CustomValidator,
) *FamilyHandler {
	return &FamilyHandler{
		familyUsecase:    familyUsecase,
		aggregateUsecase: aggregateUsecase,
		validator:        validator,
	}
}

func (h *FamilyHandler) GetAllFamilyMembers(w http.ResponseWriter, r *http.Request) {
	result, err := h.familyUsecase.GetAllFamilyMembers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list family members")
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", result)
}

func (h *FamilyHandler) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.familyUsecase.CreateFamilyMember(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create family member")
		return
	}

	response.Success(w, http.StatusCreated, "Family member added!", result)
}

func (h *FamilyHandler) DeleteFamilyMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid family member ID", nil)
		return
	}

	if err := h.familyUsecase.DeleteFamilyMember(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrFamilyMemberNotFound) {
			response.NotFound(w, "Family member not found")
			return
		}
		response.InternalServerError(w, "Failed to delete family member")
		return
	}

	response.Success(w, http.StatusOK, "Family member removed!", nil)
}

func (h *FamilyHandler) GetFamilySchedules(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid family member ID", nil)
		return
	}

	result, err := h.aggregateUsecase.GetFamilySchedules(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrFamilyMemberNotFound) {
			response.NotFound(w, "Family member not found")
			return
		}
		response.InternalServerError(w, "Failed to load family schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", result)
}
