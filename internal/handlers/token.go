package handlers

import (
	"encoding/json"
	"net/http"
)

// TokenIssuer signs an identity payload into a bearer token.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// Issue handles POST /jwt. The posted object is signed wholesale as the
// token claims.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.issuer.Issue(payload)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
