package handler

import (
	"net/http"

	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) GetAdherenceReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportUsecase.GetAdherenceReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", result)
}
