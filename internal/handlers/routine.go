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

// RoutineStore is the slice of the routine collection the handler needs.
type RoutineStore interface {
	Create(ctx context.Context, routine *models.Routine) (string, error)
	List(ctx context.Context) ([]models.Routine, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type RoutineHandler struct {
	store RoutineStore
}

func NewRoutineHandler(store RoutineStore) *RoutineHandler {
	return &RoutineHandler{store: store}
}

// CreateRoutine handles POST /routine. One routine per username.
func (h *RoutineHandler) CreateRoutine(w http.ResponseWriter, r *http.Request) {
	var routine models.Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &routine)
	if err != nil {
		if errors.Is(err, services.ErrRoutineExists) {
			writeMessage(w, http.StatusBadRequest, "User routine is already created")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to create routine")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetRoutines handles GET /routine.
func (h *RoutineHandler) GetRoutines(w http.ResponseWriter, r *http.Request) {
	routines, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, routines)
}

// DeleteRoutine handles DELETE /routine/{id}.
func (h *RoutineHandler) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete routine")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Routine not found")
		return
	}

	writeMessage(w, http.StatusOK, "Routine deleted successfully")
}
