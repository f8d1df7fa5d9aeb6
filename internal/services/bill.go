package services

import (
	"context"
	"errors"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBillExists is returned when the user already submitted a bill of this
// kind for the month.
var ErrBillExists = errors.New("bill already submitted for this month")

// BillService serves one of the bill collections (roomRents, khalaBills,
// currentBills); the three variants share a shape, so one service type takes
// the collection name.
type BillService struct {
	collection *mongo.Collection
}

func NewBillService(db *mongo.Database, collection string) *BillService {
	return &BillService{collection: db.Collection(collection)}
}

// Create inserts the bill unless one exists for the same (username, month).
// Find-then-insert; racy under concurrent identical submissions.
func (s *BillService) Create(ctx context.Context, bill *models.Bill) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{
		"username": bill.Username,
		"month":    bill.Month,
	}).Err()
	if err == nil {
		return "", ErrBillExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	result, err := s.collection.InsertOne(ctx, bill)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bills []models.Bill
	if err := cur.All(ctx, &bills); err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}

func (s *BillService) Delete(ctx context.Context, id string) (int64, error) {
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
