package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"github.com/mealdb/mealdb-gobackend/internal/services"
)

type RentStoreMock struct{ mock.Mock }

func (m *RentStoreMock) Create(ctx context.Context, rent *models.Rent) (string, error) {
	args := m.Called(ctx, rent)
	return args.String(0), args.Error(1)
}

func (m *RentStoreMock) List(ctx context.Context) ([]models.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rent), args.Error(1)
}

func (m *RentStoreMock) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateRentDuplicateMonth(t *testing.T) {
	store := new(RentStoreMock)
	store.On("Create", mock.Anything, mock.Anything).Return("", services.ErrRentExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/basaBara",
		strings.NewReader(`{"username":"rahim","month":"2025-03","amount":2000}`))

	NewRentHandler(store).CreateRent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"alreadyExists":true,"message":"Already submitted for this month"}`,
		rec.Body.String())
}

func TestGetRentsEmptyListIsArray(t *testing.T) {
	store := new(RentStoreMock)
	store.On("List", mock.Anything).Return([]models.Rent{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rentAmount", nil)

	NewRentHandler(store).GetRents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
