package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleAdvertiser Role = "ADVERTISER"
	RolePublisher  Role = "PUBLISHER"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleAdvertiser, RolePublisher:
		return true
	}
	return false
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash,omitempty" json:"-"` // never expose
	FullName     string        `bson:"fullName" json:"fullName"`
	Company      string        `bson:"company,omitempty" json:"company,omitempty"`
	Role         Role          `bson:"role" json:"role"`
	AvatarURL    string        `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	GoogleSub    string        `bson:"googleSub,omitempty" json:"-"`
	IsActive     bool          `bson:"isActive" json:"isActive"`

	LoginAttempts int        `bson:"loginAttempts" json:"-"`
	LockUntil     *time.Time `bson:"lockUntil,omitempty" json:"-"`

	ResetToken        string     `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpires *time.Time `bson:"resetTokenExpires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsLocked reports whether the account is still inside a lockout window.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// ResetTokenValid reports whether the stored reset token matches and has not
// expired. Tokens are single use: consuming one clears both fields.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.ResetToken == "" || token == "" || u.ResetToken != token {
		return false
	}
	return u.ResetTokenExpires != nil && u.ResetTokenExpires.After(now)
}
