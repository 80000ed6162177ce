package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	t.Setenv("R2_BUCKET", "uploads")
	t.Setenv("R2_PUBLIC_DOMAIN", "https://files.example.com/")

	assert.Equal(t, "https://files.example.com/uploads/avatars/a.png", PublicURL("avatars/a.png"))
}

func TestObjectNameFromCloudPublicURL(t *testing.T) {
	t.Setenv("R2_BUCKET", "uploads")
	t.Setenv("R2_PUBLIC_DOMAIN", "https://files.example.com")

	obj, err := ObjectNameFromCloudPublicURL("https://files.example.com/uploads/avatars/a.png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/a.png", obj)

	obj, err = ObjectNameFromCloudPublicURL("https://uploads.acct.r2.dev/posts/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "posts/b.jpg", obj)

	_, err = ObjectNameFromCloudPublicURL("files.example.com/x")
	assert.Error(t, err)
}
