package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bracketService services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bracketService}
}

func bracketKindParam(r *http.Request) (models.BracketKind, error) {
	switch kind := chi.URLParam(r, "kind"); kind {
	case string(models.BracketKindPlayoff):
		return models.BracketKindPlayoff, nil
	case string(models.BracketKindConsolation):
		return models.BracketKindConsolation, nil
	default:
		return "", errors.New("bracket kind must be 'playoff' or 'consolation'")
	}
}

func (h *BracketHandler) Generate(w http.ResponseWriter, r *http.Request) {
	kind, err := bracketKindParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GenerateBracketInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.GenerateBracket(r.Context(), chi.URLParam(r, "tournamentID"), kind, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := bracketKindParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.GetBracket(r.Context(), chi.URLParam(r, "tournamentID"), kind)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	kind, err := bracketKindParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RecordMatchResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.RecordResult(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		kind,
		chi.URLParam(r, "matchID"),
		input,
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Reset(w http.ResponseWriter, r *http.Request) {
	kind, err := bracketKindParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.bracketService.ResetBracket(r.Context(), chi.URLParam(r, "tournamentID"), kind); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
