package services

import (
	"context"
	"errors"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRentExists is returned when the user already submitted rent for the
// month.
var ErrRentExists = errors.New("rent already submitted for this month")

type RentService struct {
	collection *mongo.Collection
}

func NewRentService(db *mongo.Database) *RentService {
	return &RentService{collection: db.Collection("vasaBara")}
}

// Create inserts the rent record unless one exists for the same
// (username, month). Find-then-insert; racy under concurrent identical
// submissions.
func (s *RentService) Create(ctx context.Context, rent *models.Rent) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{
		"username": rent.Username,
		"month":    rent.Month,
	}).Err()
	if err == nil {
		return "", ErrRentExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	result, err := s.collection.InsertOne(ctx, rent)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *RentService) List(ctx context.Context) ([]models.Rent, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rents []models.Rent
	if err := cur.All(ctx, &rents); err != nil {
		return nil, err
	}
	if rents == nil {
		rents = []models.Rent{}
	}
	return rents, nil
}

func (s *RentService) Delete(ctx context.Context, id string) (int64, error) {
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
