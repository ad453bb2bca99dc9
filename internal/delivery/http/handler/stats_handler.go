package handler

import (
	"net/http"

	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	stats, err := h.statsUsecase.MyStats(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *StatsHandler) GetComplianceTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	trend, err := h.statsUsecase.ComplianceTrend(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute compliance trend")
		return
	}

	response.Success(w, http.StatusOK, "Compliance trend retrieved successfully", trend)
}
