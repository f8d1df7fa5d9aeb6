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

type MealStoreMock struct{ mock.Mock }

func (m *MealStoreMock) Create(ctx context.Context, meal *models.Meal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MealStoreMock) List(ctx context.Context) ([]models.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MealStoreMock) Get(ctx context.Context, id string) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MealStoreMock) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MealStoreMock) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MealStoreMock) DeleteByMonth(ctx context.Context, year, month int) (int64, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateMeal(t *testing.T) {
	store := new(MealStoreMock)
	store.On("Create", mock.Anything, mock.MatchedBy(func(meal *models.Meal) bool {
		return meal.Date == models.MealDate{Day: 15, Month: 3, Year: 2025}
	})).Return("65f0c0ffee", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meals",
		strings.NewReader(`{"meals":{"rahim":2},"date":{"day":15,"month":3,"year":2025}}`))

	NewMealHandler(store).CreateMeal(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Meal data submitted successfully!","insertedId":"65f0c0ffee"}`,
		rec.Body.String())
	store.AssertExpectations(t)
}

func TestCreateMealDuplicateDate(t *testing.T) {
	store := new(MealStoreMock)
	store.On("Create", mock.Anything, mock.Anything).Return("", services.ErrMealExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meals",
		strings.NewReader(`{"meals":{"rahim":2},"date":{"day":15,"month":3,"year":2025}}`))

	NewMealHandler(store).CreateMeal(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"message":"This date meal is already inserted!"}`,
		rec.Body.String())
}

func TestGetMealNotFound(t *testing.T) {
	store := new(MealStoreMock)
	store.On("Get", mock.Anything, "65f0c0ffee").Return(nil, mongo.ErrNoDocuments)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/65f0c0ffee", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewMealHandler(store).GetMeal(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMealStripsID(t *testing.T) {
	store := new(MealStoreMock)
	store.On("Update", mock.Anything, "65f0c0ffee", bson.M{"meals": map[string]any{"rahim": float64(3)}}).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/meals/65f0c0ffee",
		strings.NewReader(`{"_id":"evil","meals":{"rahim":3}}`))
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewMealHandler(store).UpdateMeal(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestUpdateMealEmptyMerge(t *testing.T) {
	store := new(MealStoreMock)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/meals/65f0c0ffee",
		strings.NewReader(`{"_id":"evil"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

	NewMealHandler(store).UpdateMeal(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Update")
}

func TestDeleteMeal(t *testing.T) {
	tests := []struct {
		name       string
		deleted    int64
		wantStatus int
		wantBody   string
	}{
		{"existing meal", 1, http.StatusOK, `{"message":"Meal deleted successfully."}`},
		{"missing meal", 0, http.StatusNotFound, `{"message":"Meal not found."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MealStoreMock)
			store.On("Delete", mock.Anything, "65f0c0ffee").Return(tt.deleted, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/meals/65f0c0ffee", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "65f0c0ffee"})

			NewMealHandler(store).DeleteMeal(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDeleteByMonth(t *testing.T) {
	store := new(MealStoreMock)
	store.On("DeleteByMonth", mock.Anything, 2025, 3).Return(int64(17), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/meals2/delete-by-month?year=2025&month=3", nil)

	NewMealHandler(store).DeleteByMonth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":17}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestDeleteByMonthMissingParams(t *testing.T) {
	store := new(MealStoreMock)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/meals2/delete-by-month?year=2025", nil)

	NewMealHandler(store).DeleteByMonth(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "DeleteByMonth")
}
