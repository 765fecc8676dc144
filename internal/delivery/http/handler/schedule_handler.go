package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/response"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

// GetDailySchedule returns today's merged medication and appointment
// timeline for one patient.
func (h *ScheduleHandler) GetDailySchedule(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	result, err := h.scheduleUsecase.GetDailySchedule(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to load schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", result)
}
