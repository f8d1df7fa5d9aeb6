package services

import (
	"context"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DepositService struct {
	collection *mongo.Collection
}

func NewDepositService(db *mongo.Database) *DepositService {
	return &DepositService{collection: db.Collection("amount")}
}

// Create inserts the deposit with no duplicate check.
func (s *DepositService) Create(ctx context.Context, deposit *models.Deposit) (string, error) {
	result, err := s.collection.InsertOne(ctx, deposit)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *DepositService) List(ctx context.Context) ([]models.Deposit, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var deposits []models.Deposit
	if err := cur.All(ctx, &deposits); err != nil {
		return nil, err
	}
	if deposits == nil {
		deposits = []models.Deposit{}
	}
	return deposits, nil
}

func (s *DepositService) Delete(ctx context.Context, id string) (int64, error) {
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
