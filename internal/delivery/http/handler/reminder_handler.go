package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/response"

	"github.com/gorilla/mux"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

func (h *ReminderHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	if err := h.reminderUsecase.MarkDone(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrReminderNotFound) {
			response.NotFound(w, "Reminder not found")
			return
		}
		response.InternalServerError(w, "Failed to update reminder")
		return
	}

	response.Success(w, http.StatusOK, "Reminder marked as done!", nil)
}
