package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type TwoFactorPurpose string

const (
	TwoFactorPurposeLogin         TwoFactorPurpose = "LOGIN"
	TwoFactorPurposeEmailVerify   TwoFactorPurpose = "EMAIL_VERIFY"
	TwoFactorPurposePasswordReset TwoFactorPurpose = "PASSWORD_RESET"
)

// TwoFactorCode is a short-lived one-time code emailed for step-up
// verification. Created per request, consumed exactly once.
type TwoFactorCode struct {
	ID        bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	Email     string           `bson:"email" json:"email"`
	Purpose   TwoFactorPurpose `bson:"purpose" json:"purpose"`
	Code      string           `bson:"code" json:"-"`
	Used      bool             `bson:"used" json:"used"`
	ExpiresAt time.Time        `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}

// Usable reports whether the code can still be consumed.
func (c *TwoFactorCode) Usable(now time.Time) bool {
	return !c.Used && c.ExpiresAt.After(now)
}
