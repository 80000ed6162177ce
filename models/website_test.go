package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidWebsiteStatus(t *testing.T) {
	assert.True(t, IsValidWebsiteStatus("PENDING"))
	assert.True(t, IsValidWebsiteStatus("APPROVED"))
	assert.True(t, IsValidWebsiteStatus("REJECTED"))
	assert.False(t, IsValidWebsiteStatus("approved"))
	assert.False(t, IsValidWebsiteStatus(""))
}

func TestIsValidPostStatus(t *testing.T) {
	assert.True(t, IsValidPostStatus("DRAFT"))
	assert.True(t, IsValidPostStatus("SUBMITTED"))
	assert.True(t, IsValidPostStatus("PUBLISHED"))
	assert.False(t, IsValidPostStatus("draft"))
	assert.False(t, IsValidPostStatus("ARCHIVED"))
}
