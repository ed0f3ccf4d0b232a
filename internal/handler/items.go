package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/dvergara/finanzas-service/internal/repository"
	"github.com/gorilla/mux"
)

// CreateObligation stores a new obligation in the active space.
func (h *Handler) CreateObligation(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}

	var o models.Obligation
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.CreateObligation(space, &o); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

// ListObligations lists the active space's obligations.
func (h *Handler) ListObligations(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	obligations, err := h.svc.ListObligations(space)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list obligations")
		return
	}
	respondJSON(w, http.StatusOK, obligations)
}

// CreateDebt stores a new installment debt in the active space.
func (h *Handler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}

	var d models.Debt
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.CreateDebt(space, &d); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, d)
}

// ListDebts lists the active space's debts.
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	debts, err := h.svc.ListDebts(space)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list debts")
		return
	}
	respondJSON(w, http.StatusOK, debts)
}

// ListRecurring lists upcoming materialized recurring instances.
func (h *Handler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	instances, err := h.svc.ListUpcomingRecurring(space, 0)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list recurring instances")
		return
	}
	respondJSON(w, http.StatusOK, instances)
}

// RunRecurring materializes the next occurrences of one rule.
func (h *Handler) RunRecurring(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}

	ruleID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rule id")
		return
	}

	instances, err := h.svc.RunRecurringRule(space, ruleID)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, instances)
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "rule not found")
	default:
		respondError(w, http.StatusInternalServerError, "failed to run rule")
	}
}

// ListGoals lists the active space's savings goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	goals, err := h.svc.ListGoals(space)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// ListTransactions lists the current period's transactions.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	space, ok := spaceID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing space")
		return
	}
	transactions, err := h.svc.ListPeriodTransactions(space)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}
