package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
)

// DepositStore is the slice of the amount collection the handler needs.
type DepositStore interface {
	Create(ctx context.Context, deposit *models.Deposit) (string, error)
	List(ctx context.Context) ([]models.Deposit, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type DepositHandler struct {
	store DepositStore
}

func NewDepositHandler(store DepositStore) *DepositHandler {
	return &DepositHandler{store: store}
}

// CreateDeposit handles POST /amount. Every submission is inserted.
func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	var deposit models.Deposit
	if err := json.NewDecoder(r.Body).Decode(&deposit); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &deposit)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create deposit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetDeposits handles GET /amount.
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}

// DeleteDeposit handles DELETE /amount/{id}.
func (h *DepositHandler) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete deposit")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Deposit not found")
		return
	}

	writeMessage(w, http.StatusOK, "Deposit deleted successfully")
}
