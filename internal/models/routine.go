package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routine assigns a duty to a member. Username is the identity key; a member
// has at most one routine document. Extra keeps any undeclared payload
// fields.
type Routine struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Duty     string             `bson:"duty" json:"duty"`
	Day      string             `bson:"day,omitempty" json:"day,omitempty"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (rt *Routine) UnmarshalJSON(data []byte) error {
	type plain Routine
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "username", "duty", "day")
	if err != nil {
		return err
	}
	p.Extra = extra
	*rt = Routine(p)
	return nil
}

func (rt Routine) MarshalJSON() ([]byte, error) {
	type plain Routine
	return marshalWithExtra(plain(rt), rt.Extra)
}
