package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LoginSession is one row per login event, flagged inactive on logout.
type LoginSession struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	IP        string        `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent string        `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Method    string        `bson:"method" json:"method"` // password | google
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	ClosedAt  *time.Time    `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
}

type RefreshToken struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	UserID     bson.ObjectID `bson:"userId"`
	TokenHash  string        `bson:"tokenHash"`
	ExpiresAt  time.Time     `bson:"expiresAt"`
	CreatedAt  time.Time     `bson:"createdAt"`
	RevokedAt  *time.Time    `bson:"revokedAt,omitempty"`
	ReplacedBy *string       `bson:"replacedBy,omitempty"`
}
