package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
)

// BazarStore is the slice of the bazar collection the handler needs.
type BazarStore interface {
	Create(ctx context.Context, bazar *models.Bazar) (string, error)
	List(ctx context.Context) ([]models.Bazar, error)
	ListByEmail(ctx context.Context, email string) ([]models.Bazar, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type BazarHandler struct {
	store BazarStore
}

func NewBazarHandler(store BazarStore) *BazarHandler {
	return &BazarHandler{store: store}
}

// CreateBazar handles POST /bazar. Every submission is inserted; there is
// no duplicate check on purchases.
func (h *BazarHandler) CreateBazar(w http.ResponseWriter, r *http.Request) {
	var bazar models.Bazar
	if err := json.NewDecoder(r.Body).Decode(&bazar); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &bazar)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create bazar entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetBazars handles GET /bazar.
func (h *BazarHandler) GetBazars(w http.ResponseWriter, r *http.Request) {
	bazars, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch bazar data")
		return
	}
	writeJSON(w, http.StatusOK, bazars)
}

// GetBazarsByEmail handles GET /bazar/{email}.
func (h *BazarHandler) GetBazarsByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	bazars, err := h.store.ListByEmail(r.Context(), email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch bazar data")
		return
	}
	writeJSON(w, http.StatusOK, bazars)
}

// DeleteBazar handles DELETE /bazar/{id}.
func (h *BazarHandler) DeleteBazar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete bazar entry")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Bazar not found")
		return
	}

	writeMessage(w, http.StatusOK, "Bazar deleted successfully")
}
