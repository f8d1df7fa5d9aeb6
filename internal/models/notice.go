package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice is a board announcement. No uniqueness enforced. Extra keeps any
// undeclared payload fields.
type Notice struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title,omitempty" json:"title,omitempty"`
	Message string             `bson:"message" json:"message"`
	Date    string             `bson:"date,omitempty" json:"date,omitempty"`
	Extra   bson.M             `bson:",inline" json:"-"`
}

func (n *Notice) UnmarshalJSON(data []byte) error {
	type plain Notice
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "title", "message", "date")
	if err != nil {
		return err
	}
	p.Extra = extra
	*n = Notice(p)
	return nil
}

func (n Notice) MarshalJSON() ([]byte, error) {
	type plain Notice
	return marshalWithExtra(plain(n), n.Extra)
}
