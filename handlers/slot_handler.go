package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/services"
)

type SlotHandler struct {
	slotService services.SlotService
}

func NewSlotHandler(slotService services.SlotService) *SlotHandler {
	return &SlotHandler{slotService: slotService}
}

func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSlotInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	slot, err := h.slotService.CreateSlot(r.Context(), chi.URLParam(r, "eventID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"slot": slot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SlotHandler) List(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotService.ListSlotsByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"slots": slots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Book привязывает слот к матчу. При гонке за один слот проигравший
// запрос получает 409 без повторных попыток.
func (h *SlotHandler) Book(w http.ResponseWriter, r *http.Request) {
	var input services.BookSlotInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	slot, err := h.slotService.BookSlot(r.Context(), chi.URLParam(r, "slotID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"slot": slot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SlotHandler) Release(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TournamentID string `json:"tournament_id"`
		GroupID      string `json:"group_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.slotService.ReleaseSlot(r.Context(), chi.URLParam(r, "slotID"), input.TournamentID, input.GroupID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.slotService.DeleteSlot(r.Context(), chi.URLParam(r, "slotID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
