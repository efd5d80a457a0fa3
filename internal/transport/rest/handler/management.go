package handler

import (
	"net/http"
	"strconv"

	"crewpulse/internal/service"
)

// ManagementHandler handles management reporting endpoints.
type ManagementHandler struct {
	riskSvc *service.RiskService
}

// NewManagementHandler creates a new management handler.
func NewManagementHandler(riskSvc *service.RiskService) *ManagementHandler {
	return &ManagementHandler{riskSvc: riskSvc}
}

// Dashboard handles GET /v1/management/dashboard
func (h *ManagementHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	report, err := h.riskSvc.Dashboard(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Team handles GET /v1/management/team
func (h *ManagementHandler) Team(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, _ := strconv.Atoi(q.Get("days"))

	report, err := h.riskSvc.Team(r.Context(), days, q.Get("date"), q.Get("vessel"), q.Get("department"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
