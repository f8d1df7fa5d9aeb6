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

// BillStore is the slice of a bill collection the handler needs. The
// room-rent, khala-bill and current-bill routes each get their own handler
// over their own collection; the code is shared because the shape is.
type BillStore interface {
	Create(ctx context.Context, bill *models.Bill) (string, error)
	List(ctx context.Context) ([]models.Bill, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type BillHandler struct {
	store BillStore
}

func NewBillHandler(store BillStore) *BillHandler {
	return &BillHandler{store: store}
}

// CreateBill handles POST on a bill route. One submission per
// (username, month); a duplicate answers 409.
func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var bill models.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &bill)
	if err != nil {
		if errors.Is(err, services.ErrBillExists) {
			writeMessage(w, http.StatusConflict, "Already submitted for this month")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to create bill")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetBills handles GET on a bill route.
func (h *BillHandler) GetBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch bills")
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

// DeleteBill handles DELETE on a bill route.
func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete bill")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Bill not found")
		return
	}

	writeMessage(w, http.StatusOK, "Bill deleted successfully")
}
