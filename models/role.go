package models

import "go.mongodb.org/mongo-driver/v2/bson"

// RoleDoc is the static reference record backing a Role name.
type RoleDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        Role          `bson:"name" json:"name"`
	Permissions []string      `bson:"permissions" json:"permissions"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
}
