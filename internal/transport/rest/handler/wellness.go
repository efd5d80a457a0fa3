package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"crewpulse/internal/repository"
	"crewpulse/internal/service"
	"crewpulse/internal/transport/rest/middleware"
)

// WellnessHandler handles structured assessment endpoints.
type WellnessHandler struct {
	authSvc     *service.AuthService
	wellnessSvc *service.WellnessService
	riskSvc     *service.RiskService
}

// NewWellnessHandler creates a new wellness handler.
func NewWellnessHandler(authSvc *service.AuthService, wellnessSvc *service.WellnessService, riskSvc *service.RiskService) *WellnessHandler {
	return &WellnessHandler{
		authSvc:     authSvc,
		wellnessSvc: wellnessSvc,
		riskSvc:     riskSvc,
	}
}

// Questions handles GET /v1/wellness/questions
func (h *WellnessHandler) Questions(w http.ResponseWriter, r *http.Request) {
	user, err := h.authSvc.GetUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil || user == nil {
		writeError(w, http.StatusUnauthorized, "user not found")
		return
	}

	issued, err := h.wellnessSvc.IssueQuestions(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, issued)
}

// Submit handles POST /v1/wellness/submit
func (h *WellnessHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, err := h.authSvc.GetUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil || user == nil {
		writeError(w, http.StatusUnauthorized, "user not found")
		return
	}

	var req service.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.wellnessSvc.Submit(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCheckNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, repository.ErrAlreadyCompleted):
			writeError(w, http.StatusConflict, "Wellness check already completed")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /v1/wellness/history
func (h *WellnessHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	report, err := h.riskSvc.History(r.Context(), userID, days, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
