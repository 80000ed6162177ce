package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{"requested", "inProgress", "advertiserApproval", "completed", "rejected"} {
		assert.True(t, IsValidOrderStatus(s), "expected %q to be valid", s)
	}
	for _, s := range []string{"", "REQUESTED", "in_progress", "done", "cancelled", "Requested"} {
		assert.False(t, IsValidOrderStatus(s), "expected %q to be invalid", s)
	}
}
