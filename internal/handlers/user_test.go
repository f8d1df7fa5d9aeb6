package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"github.com/mealdb/mealdb-gobackend/internal/services"
)

type UserStoreMock struct{ mock.Mock }

func (m *UserStoreMock) Create(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserStoreMock) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserStoreMock) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *UserStoreMock) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserStoreMock) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestCreateUser(t *testing.T) {
	store := new(UserStoreMock)
	store.On("Create", mock.Anything, mock.Anything).Return("65f0c0ffee", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Rahim","email":"rahim@mess.test"}`))

	NewUserHandler(store).CreateUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"65f0c0ffee"}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := new(UserStoreMock)
	store.On("Create", mock.Anything, mock.Anything).Return("", services.ErrUserExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Rahim","email":"rahim@mess.test"}`))

	NewUserHandler(store).CreateUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists","insertedId":null}`, rec.Body.String())
}

func TestUpdateUserStripsID(t *testing.T) {
	store := new(UserStoreMock)
	store.On("Update", mock.Anything, "65f0c0ffee", bson.M{"name": "Karim"}).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/65f0c0ffee",
		strings.NewReader(`{"_id":"evil","name":"Karim"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewUserHandler(store).UpdateUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestUpdateUserEmptyMerge(t *testing.T) {
	store := new(UserStoreMock)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/65f0c0ffee",
		strings.NewReader(`{"_id":"evil"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewUserHandler(store).UpdateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Update")
}

func TestUpdateUserNotFound(t *testing.T) {
	store := new(UserStoreMock)
	store.On("Update", mock.Anything, "65f0c0ffee", mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/65f0c0ffee",
		strings.NewReader(`{"name":"Karim"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewUserHandler(store).UpdateUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		deleted    int64
		wantStatus int
	}{
		{"existing user", 1, http.StatusOK},
		{"missing user", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(UserStoreMock)
			store.On("Delete", mock.Anything, "65f0c0ffee").Return(tt.deleted, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/users/65f0c0ffee", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

			NewUserHandler(store).DeleteUser(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckAdmin(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		want    string
	}{
		{"admin user", true, `{"admin":true}`},
		{"member or missing user", false, `{"admin":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(UserStoreMock)
			store.On("IsAdmin", mock.Anything, "rahim@mess.test").Return(tt.isAdmin, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/users/admin/rahim@mess.test", nil)
			req = mux.SetURLVars(req, map[string]string{"email": "rahim@mess.test"})

			NewUserHandler(store).CheckAdmin(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
