package services

import (
	"context"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NoticeService struct {
	collection *mongo.Collection
}

func NewNoticeService(db *mongo.Database) *NoticeService {
	return &NoticeService{collection: db.Collection("notices")}
}

// Create inserts the notice with no duplicate check.
func (s *NoticeService) Create(ctx context.Context, notice *models.Notice) (string, error) {
	result, err := s.collection.InsertOne(ctx, notice)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notices []models.Notice
	if err := cur.All(ctx, &notices); err != nil {
		return nil, err
	}
	if notices == nil {
		notices = []models.Notice{}
	}
	return notices, nil
}

func (s *NoticeService) Delete(ctx context.Context, id string) (int64, error) {
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
