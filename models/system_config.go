package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Well-known config keys.
const (
	ConfigTwoFactorRequired = "twoFactorRequired"
	ConfigMarketplaceOpen   = "marketplaceOpen"
)

type SystemConfig struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Key         string        `bson:"key" json:"key"`
	Value       string        `bson:"value" json:"value"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BoolValue interprets the stored value as a feature toggle.
func (c *SystemConfig) BoolValue() bool {
	switch c.Value {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
