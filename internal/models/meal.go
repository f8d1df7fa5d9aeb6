package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealDate is the structured date embedded in a meal document. At most one
// meal document exists per (day, month, year).
type MealDate struct {
	Day   int `bson:"day" json:"day"`
	Month int `bson:"month" json:"month"`
	Year  int `bson:"year" json:"year"`
}

// Meal represents one day's meal sheet. The meals payload is whatever the
// client submitted (per-member counts and flags); it is stored verbatim.
type Meal struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Meals any                `bson:"meals" json:"meals"`
	Date  MealDate           `bson:"date" json:"date"`
}
