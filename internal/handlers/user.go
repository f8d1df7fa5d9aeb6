package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
	"github.com/mealdb/mealdb-gobackend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the slice of the users collection the handler needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (string, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// CreateUser handles POST /users. A duplicate email answers 200 with a null
// insertedId rather than an error status; clients key off the message.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			writeJSON(w, http.StatusOK, map[string]any{
				"message":    "User already exists",
				"insertedId": nil,
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetUsers handles GET /users and GET /users2.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UpdateUser handles PATCH /users/{id}: a partial merge of the supplied
// fields. An _id in the body is dropped so the identity key is never
// rewritten.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
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
		writeMessage(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if result.MatchedCount == 0 {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DeleteUser handles DELETE /users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	writeMessage(w, http.StatusOK, "User deleted successfully")
}

// CheckAdmin handles GET /users/admin/{email}. A missing user is simply not
// an admin.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	isAdmin, err := h.store.IsAdmin(r.Context(), email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}
