package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
	"github.com/mealdb/mealdb-gobackend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MealStore is the slice of the meals collection the handler needs.
type MealStore interface {
	Create(ctx context.Context, meal *models.Meal) (string, error)
	List(ctx context.Context) ([]models.Meal, error)
	Get(ctx context.Context, id string) (*models.Meal, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteByMonth(ctx context.Context, year, month int) (int64, error)
}

type MealHandler struct {
	store MealStore
}

func NewMealHandler(store MealStore) *MealHandler {
	return &MealHandler{store: store}
}

// CreateMeal handles POST /meals and /meals2. One meal sheet per date; a
// duplicate answers 400 with success:false.
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	id, err := h.store.Create(r.Context(), &meal)
	if err != nil {
		if errors.Is(err, services.ErrMealExists) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "This date meal is already inserted!",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Meal data submitted successfully!",
		"insertedId": id,
	})
}

// GetMeals handles GET /meals and /meals2.
func (h *MealHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch meals")
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

// GetMeal handles GET /meals/{id}.
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	meal, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Meal not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch meal")
		return
	}

	writeJSON(w, http.StatusOK, meal)
}

// UpdateMeal handles PUT /meals/{id}: a partial merge of the supplied
// fields. An _id in the body is dropped so the identifier is never
// rewritten.
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, "No fields to update")
		return
	}

	result, err := h.store.Update(r.Context(), id, fields)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to update meal")
		return
	}
	if result.MatchedCount == 0 {
		writeMessage(w, http.StatusNotFound, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DeleteMeal handles DELETE /meals/{id}.
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error while deleting the meal.")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Meal not found.")
		return
	}

	writeMessage(w, http.StatusOK, "Meal deleted successfully.")
}

// DeleteByMonth handles DELETE /meals2/delete-by-month?year=Y&month=M and
// reports how many meal sheets were removed.
func (h *MealHandler) DeleteByMonth(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		writeMessage(w, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	deleted, err := h.store.DeleteByMonth(r.Context(), year, month)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
