package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserIsLocked(t *testing.T) {
	now := time.Now()

	u := User{}
	assert.False(t, u.IsLocked(now), "no lockUntil means not locked")

	past := now.Add(-time.Minute)
	u.LockUntil = &past
	assert.False(t, u.IsLocked(now), "expired lock window")

	future := now.Add(30 * time.Minute)
	u.LockUntil = &future
	assert.True(t, u.IsLocked(now))
}

func TestUserResetTokenValid(t *testing.T) {
	now := time.Now()
	expires := now.Add(time.Hour)

	u := User{ResetToken: "tok", ResetTokenExpires: &expires}
	assert.True(t, u.ResetTokenValid("tok", now))
	assert.False(t, u.ResetTokenValid("other", now))
	assert.False(t, u.ResetTokenValid("", now))

	// one hour later the token is gone
	assert.False(t, u.ResetTokenValid("tok", now.Add(61*time.Minute)))

	// consumed token: fields cleared
	u.ResetToken = ""
	u.ResetTokenExpires = nil
	assert.False(t, u.ResetTokenValid("tok", now))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("ADMIN"))
	assert.True(t, IsValidRole("ADVERTISER"))
	assert.True(t, IsValidRole("PUBLISHER"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("SUPERUSER"))
}
