package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rent is a monthly room-rent submission. At most one document per
// (username, month). Extra keeps any undeclared payload fields.
type Rent struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Month    string             `bson:"month" json:"month"`
	Amount   float64            `bson:"amount" json:"amount"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (r *Rent) UnmarshalJSON(data []byte) error {
	type plain Rent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "username", "email", "month", "amount")
	if err != nil {
		return err
	}
	p.Extra = extra
	*r = Rent(p)
	return nil
}

func (r Rent) MarshalJSON() ([]byte, error) {
	type plain Rent
	return marshalWithExtra(plain(r), r.Extra)
}

// Bill is one utility-bill submission. The room-rent, khala-bill and
// current-bill collections all share this shape; at most one document per
// (username, month) in each. Extra keeps any undeclared payload fields.
type Bill struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Month    string             `bson:"month" json:"month"`
	Amount   float64            `bson:"amount" json:"amount"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (b *Bill) UnmarshalJSON(data []byte) error {
	type plain Bill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "username", "month", "amount")
	if err != nil {
		return err
	}
	p.Extra = extra
	*b = Bill(p)
	return nil
}

func (b Bill) MarshalJSON() ([]byte, error) {
	type plain Bill
	return marshalWithExtra(plain(b), b.Extra)
}
