package services

import (
	"context"
	"errors"

	"github.com/mealdb/mealdb-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserExists is returned when a user document with the same email is
// already present.
var ErrUserExists = errors.New("user already exists")

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// Create inserts the user unless one with the same email exists. The guard
// is a find-then-insert sequence, not an atomic constraint: two concurrent
// identical submissions can both pass the lookup and both insert.
func (s *UserService) Create(ctx context.Context, user *models.User) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Update merges the supplied fields into the document. Callers strip any
// _id from the payload before calling.
func (s *UserService) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
}

// Delete removes a user document by id, returning the number removed.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
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

// IsAdmin reports whether a user with the given email exists and carries the
// admin role. A missing user is not an error; it is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
