package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bazar is a shared-purchase entry. No uniqueness is enforced; members may
// submit any number of entries. Extra keeps any undeclared payload fields.
type Bazar struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Extra       bson.M             `bson:",inline" json:"-"`
}

func (b *Bazar) UnmarshalJSON(data []byte) error {
	type plain Bazar
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "email", "name", "amount", "description", "date")
	if err != nil {
		return err
	}
	p.Extra = extra
	*b = Bazar(p)
	return nil
}

func (b Bazar) MarshalJSON() ([]byte, error) {
	type plain Bazar
	return marshalWithExtra(plain(b), b.Extra)
}
