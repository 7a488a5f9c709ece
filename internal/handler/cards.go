package handler

import (
	"errors"
	"net/http"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request, s ServiceI) {
	cards, err := s.FetchCards(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req models.NewFlashCard
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := s.CreateCard(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req models.CardEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := s.UpdateCard(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// ReviewCard records a review. A card missing from the session list triggers one
// reload of the cards before giving up.
func (h *Handler) ReviewCard(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req struct {
		Correct *bool `json:"correct"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Correct == nil {
		writeError(w, http.StatusBadRequest, "correct is required")
		return
	}

	id := r.PathValue("id")
	card, err := s.ReviewCard(r.Context(), id, *req.Correct)
	if errors.Is(err, models.ErrNotCached) {
		if _, err = s.FetchCards(r.Context()); err == nil {
			card, err = s.ReviewCard(r.Context(), id, *req.Correct)
		}
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request, s ServiceI) {
	if err := s.DeleteCard(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
