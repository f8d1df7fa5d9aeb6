package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/models"
)

// NoticeStore is the slice of the notices collection the handler needs.
type NoticeStore interface {
	Create(ctx context.Context, notice *models.Notice) (string, error)
	List(ctx context.Context) ([]models.Notice, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type NoticeHandler struct {
	store NoticeStore
}

func NewNoticeHandler(store NoticeStore) *NoticeHandler {
	return &NoticeHandler{store: store}
}

// CreateNotice handles POST /notices. Every submission is inserted.
func (h *NoticeHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	var notice models.Notice
	if err := json.NewDecoder(r.Body).Decode(&notice); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Create(r.Context(), &notice)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create notice")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// GetNotices handles GET /notices.
func (h *NoticeHandler) GetNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.store.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch notices")
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

// DeleteNotice handles DELETE /notices/{id}.
func (h *NoticeHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete notice")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Notice not found")
		return
	}

	writeMessage(w, http.StatusOK, "Notice deleted successfully")
}
