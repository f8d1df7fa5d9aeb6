package services

import (
	"context"
	"errors"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRoutineExists is returned when the user already has a routine document.
var ErrRoutineExists = errors.New("routine already created for this user")

type RoutineService struct {
	collection *mongo.Collection
}

func NewRoutineService(db *mongo.Database) *RoutineService {
	return &RoutineService{collection: db.Collection("routine")}
}

// Create inserts the routine unless the username already has one.
// Find-then-insert; racy under concurrent identical submissions.
func (s *RoutineService) Create(ctx context.Context, routine *models.Routine) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{"username": routine.Username}).Err()
	if err == nil {
		return "", ErrRoutineExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	result, err := s.collection.InsertOne(ctx, routine)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *RoutineService) List(ctx context.Context) ([]models.Routine, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var routines []models.Routine
	if err := cur.All(ctx, &routines); err != nil {
		return nil, err
	}
	if routines == nil {
		routines = []models.Routine{}
	}
	return routines, nil
}

func (s *RoutineService) Delete(ctx context.Context, id string) (int64, error) {
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
