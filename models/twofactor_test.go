package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTwoFactorCodeUsable(t *testing.T) {
	now := time.Now()

	c := TwoFactorCode{Code: "123456", ExpiresAt: now.Add(10 * time.Minute)}
	assert.True(t, c.Usable(now))

	c.Used = true
	assert.False(t, c.Usable(now), "a consumed code can never be reused")

	c.Used = false
	c.ExpiresAt = now.Add(-time.Second)
	assert.False(t, c.Usable(now), "expired codes are rejected")
}
