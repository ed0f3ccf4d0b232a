package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dvergara/finanzas-service/internal/repository"
	"github.com/dvergara/finanzas-service/internal/service"
	"github.com/shopspring/decimal"
)

// Timeline serves the aggregated due-date view. A failed provider shows up
// in source_errors; the response is still 200 with the remaining sources.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}

	windowDays := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		windowDays = parsed
	}

	respondJSON(w, http.StatusOK, h.svc.Timeline(space, windowDays))
}

// Insight serves the financial profile, risk level, and weekly actions.
func (h *Handler) Insight(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Insight(space))
}

// ConfirmPayment applies a payment against an obligation or a debt.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}

	var req struct {
		Kind        string          `json:"kind"`
		ID          int64           `json:"id"`
		Amount      decimal.Decimal `json:"amount"`
		Date        string          `json:"date"` // YYYY-MM-DD
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	err = h.svc.ConfirmPayment(space, req.Kind, req.ID, req.Amount, date, req.Description)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrUnknownKind):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "payment target not found")
	default:
		respondError(w, http.StatusInternalServerError, "failed to confirm payment")
	}
}
