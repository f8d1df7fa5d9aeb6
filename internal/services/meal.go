package services

import (
	"context"
	"errors"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMealExists is returned when a meal document for the same (day, month,
// year) is already present.
var ErrMealExists = errors.New("meal for this date already exists")

type MealService struct {
	collection *mongo.Collection
}

func NewMealService(db *mongo.Database) *MealService {
	return &MealService{collection: db.Collection("meals")}
}

// Create inserts the meal unless one exists for the same embedded date.
// Find-then-insert; racy under concurrent identical submissions.
func (s *MealService) Create(ctx context.Context, meal *models.Meal) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{
		"date.day":   meal.Date.Day,
		"date.month": meal.Date.Month,
		"date.year":  meal.Date.Year,
	}).Err()
	if err == nil {
		return "", ErrMealExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	result, err := s.collection.InsertOne(ctx, meal)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MealService) List(ctx context.Context) ([]models.Meal, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var meals []models.Meal
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

// Get looks a meal up by its store-assigned id.
func (s *MealService) Get(ctx context.Context, id string) (*models.Meal, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update merges the supplied fields into the document. Callers strip any
// _id from the payload before calling.
func (s *MealService) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
}

func (s *MealService) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByMonth removes every meal whose embedded date matches both year and
// month and reports how many were removed. Irreversible; there is no
// confirmation step.
func (s *MealService) DeleteByMonth(ctx context.Context, year, month int) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{
		"date.year":  year,
		"date.month": month,
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
