package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deposit is a monetary deposit into the mess fund. No uniqueness enforced.
// Extra keeps any undeclared payload fields.
type Deposit struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Amount   float64            `bson:"amount" json:"amount"`
	Month    string             `bson:"month,omitempty" json:"month,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (d *Deposit) UnmarshalJSON(data []byte) error {
	type plain Deposit
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "username", "email", "amount", "month", "date")
	if err != nil {
		return err
	}
	p.Extra = extra
	*d = Deposit(p)
	return nil
}

func (d Deposit) MarshalJSON() ([]byte, error) {
	type plain Deposit
	return marshalWithExtra(plain(d), d.Extra)
}
