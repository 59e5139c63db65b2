package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// GenerateMatches заполняет пустую группу круговым расписанием.
func (h *MatchHandler) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.matchService.GenerateMatches(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "groupID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var input services.RecordMatchResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.matchService.RecordResult(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "groupID"),
		chi.URLParam(r, "matchID"),
		input,
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input services.ScheduleMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.matchService.ScheduleMatch(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "groupID"),
		chi.URLParam(r, "matchID"),
		input,
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
