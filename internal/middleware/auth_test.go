package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealdb/mealdb-gobackend/internal/auth"
)

type AdminCheckerMock struct{ mock.Mock }

func (m *AdminCheckerMock) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	RequireAuth(m)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"message":"Unauthorized access"}`, rec.Body.String())
}

func TestRequireAuthInvalidToken(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	RequireAuth(m)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthValidToken(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)
	token, err := m.Issue(map[string]any{"email": "karim@mess.test"})
	require.NoError(t, err)

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = GetEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	RequireAuth(m)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "karim@mess.test", gotEmail)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		isAdmin    bool
		err        error
		wantStatus int
		wantNext   bool
	}{
		{"admin passes", true, nil, http.StatusOK, true},
		{"member forbidden", false, nil, http.StatusForbidden, false},
		{"lookup failure", false, errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(AdminCheckerMock)
			checker.On("IsAdmin", mock.Anything, "karim@mess.test").Return(tt.isAdmin, tt.err)

			called := false
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
			req = req.WithContext(context.WithValue(req.Context(), EmailKey, "karim@mess.test"))

			RequireAdmin(checker)(okHandler(&called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			checker.AssertExpectations(t)
		})
	}
}
