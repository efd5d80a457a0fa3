package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"crewpulse/internal/model"
	"crewpulse/internal/repository"
	"crewpulse/internal/sentiment"
	"crewpulse/internal/service"
	"crewpulse/internal/transport/rest/middleware"
)

// CheckinHandler handles quick check-in endpoints.
type CheckinHandler struct {
	checkinSvc *service.CheckinService
}

// NewCheckinHandler creates a new check-in handler.
func NewCheckinHandler(checkinSvc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc}
}

// SubmitCheckinRequest is the request body for a quick check-in.
type SubmitCheckinRequest struct {
	MoodInput string          `json:"moodInput"`
	InputType model.InputType `json:"inputType,omitempty"`
}

// Submit handles POST /v1/checkins
func (h *CheckinHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkIn, analysis, err := h.checkinSvc.Submit(r.Context(), userID, req.MoodInput, req.InputType)
	if err != nil {
		switch {
		case errors.Is(err, sentiment.ErrEmptyInput), errors.Is(err, sentiment.ErrInputTooLong):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrDuplicateCheckIn):
			writeError(w, http.StatusConflict, "You have already checked in today")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Check-in submitted successfully",
		"checkIn": checkIn,
		"analysis": map[string]interface{}{
			"category":      analysis.Category,
			"wellnessScore": analysis.WellnessScore,
			"positiveWords": analysis.PositiveWords,
			"negativeWords": analysis.NegativeWords,
		},
	})
}

// History handles GET /v1/checkins
func (h *CheckinHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	checkIns, today, err := h.checkinSvc.History(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"checkIns":          checkIns,
		"hasCheckedInToday": today != nil,
		"todayCheckIn":      today,
	})
}
