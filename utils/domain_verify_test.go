package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationRecord(t *testing.T) {
	assert.Equal(t, "linkbridge-verify=abc123", VerificationRecord("abc123"))
}

func TestMatchVerificationRecord(t *testing.T) {
	records := []string{
		"v=spf1 include:_spf.example.com ~all",
		"  linkbridge-verify=tok-1  ",
		"google-site-verification=xyz",
	}

	assert.True(t, MatchVerificationRecord(records, "tok-1"))
	assert.False(t, MatchVerificationRecord(records, "tok-2"))
	assert.False(t, MatchVerificationRecord(records, ""))
	assert.False(t, MatchVerificationRecord(nil, "tok-1"))

	// a record containing the token inside other text is not a match
	assert.False(t, MatchVerificationRecord([]string{"prefix linkbridge-verify=tok-1"}, "tok-1"))
}
