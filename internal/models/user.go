package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user document may carry.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User model. Email is the identity key; at most one document per email.
// Extra keeps whatever additional profile fields the client submitted.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Extra bson.M             `bson:",inline" json:"-"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := extraFields(data, "_id", "name", "email", "photo", "role")
	if err != nil {
		return err
	}
	p.Extra = extra
	*u = User(p)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}
