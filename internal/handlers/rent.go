package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
	"github.com/mealdb/mealdb-gobackend/internal/services"
)

// RentStore is the slice of the rent collection the handler needs.
type RentStore interface {
	Create(ctx context.Context, rent *models.Rent) (string, error)
	List(ctx context.Context) ([]models.Rent, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type RentHandler struct {
	store RentStore
}

func NewRentHandler(store RentStore) *RentHandler {
	return &RentHandler{store: store}
}

// CreateRent handles POST /basaBara. One submission per (username, month);
// a duplicate answers 400 with alreadyExists:true.
func (h *RentHandler) CreateRent(w http.ResponseWriter, r *http.Request) {
	var rent models.Rent
	if err := json.NewDecoder(r.Body).Decode(&rent); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &rent)
	if err != nil {
		if errors.Is(err, services.ErrRentExists) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"alreadyExists": true,
				"message":       "Already submitted for this month",
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to create rent record")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetRents handles GET /basaBara and GET /rentAmount.
func (h *RentHandler) GetRents(w http.ResponseWriter, r *http.Request) {
	rents, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch rent data")
		return
	}
	writeJSON(w, http.StatusOK, rents)
}

// DeleteRent handles DELETE /basaBara/{id}.
func (h *RentHandler) DeleteRent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete rent record")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Rent record not found")
		return
	}

	writeMessage(w, http.StatusOK, "Rent record deleted successfully")
}
