package services

import (
	"context"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BazarService struct {
	collection *mongo.Collection
}

func NewBazarService(db *mongo.Database) *BazarService {
	return &BazarService{collection: db.Collection("bazar")}
}

// Create inserts the entry with no duplicate check.
func (s *BazarService) Create(ctx context.Context, bazar *models.Bazar) (string, error) {
	result, err := s.collection.InsertOne(ctx, bazar)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *BazarService) List(ctx context.Context) ([]models.Bazar, error) {
	return s.find(ctx, bson.D{})
}

// ListByEmail returns the entries whose email field equals the given owner.
func (s *BazarService) ListByEmail(ctx context.Context, email string) ([]models.Bazar, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *BazarService) find(ctx context.Context, filter any) ([]models.Bazar, error) {
	cur, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bazars []models.Bazar
	if err := cur.All(ctx, &bazars); err != nil {
		return nil, err
	}
	if bazars == nil {
		bazars = []models.Bazar{}
	}
	return bazars, nil
}

func (s *BazarService) Delete(ctx context.Context, id string) (int64, error) {
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
