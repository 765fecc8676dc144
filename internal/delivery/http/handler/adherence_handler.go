package handler

import (
	"net/http"
	"strconv"

	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/response"

	"github.com/gorilla/mux"
)

type AdherenceHandler struct {
	adherenceUsecase usecase.AdherenceUsecase
}

func NewAdherenceHandler(adherenceUsecase usecase.AdherenceUsecase) *AdherenceHandler {
	return &AdherenceHandler{
		adherenceUsecase: adherenceUsecase,
	}
}

// PredictAdherence scores the patient's recent reminder history and
// returns a risk level with a coaching tip.
func (h *AdherenceHandler) PredictAdherence(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	result, err := h.adherenceUsecase.PredictAdherence(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to predict adherence")
		return
	}

	response.Success(w, http.StatusOK, "Adherence predicted successfully", result)
}
