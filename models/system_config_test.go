package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemConfigBoolValue(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "on"} {
		c := SystemConfig{Key: ConfigMarketplaceOpen, Value: v}
		assert.True(t, c.BoolValue(), "value %q", v)
	}
	for _, v := range []string{"false", "0", "no", "off", "", "TRUE"} {
		c := SystemConfig{Key: ConfigTwoFactorRequired, Value: v}
		assert.False(t, c.BoolValue(), "value %q", v)
	}
}
