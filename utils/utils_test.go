package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret-pass"))
	assert.Error(t, CheckPassword(hash, "wrong-pass"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("64f000000000000000000001", "user@example.com", "ADVERTISER", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ADVERTISER", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("id", "a@b.com", "ADMIN", time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("id", "a@b.com", "ADMIN", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tech & Gadgets", "tech-gadgets"},
		{"Café Culture", "cafe-culture"},
		{"  example.com  ", "example-com"},
		{"--Already--Slugged--", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), "slug of %q", tt.in)
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.Example.com/path?q=1", "example.com"},
		{"example.com", "example.com"},
		{"WWW.EXAMPLE.COM", "example.com"},
		{"http://blog.example.com/", "blog.example.com"},
		{"example.com.", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDomain(tt.in), "normalize %q", tt.in)
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	assert.True(t, IsValidHTTPURL("https://example.com/page"))
	assert.True(t, IsValidHTTPURL("http://example.com"))
	assert.False(t, IsValidHTTPURL("ftp://example.com"))
	assert.False(t, IsValidHTTPURL("example.com/page"))
	assert.False(t, IsValidHTTPURL(""))
	assert.False(t, IsValidHTTPURL("https://"))
}

func TestPagination(t *testing.T) {
	t.Setenv("READ_QUERY_MAX_LIMIT", "100")
	t.Setenv("DEFAULT_READ_QUERY_LIMIT", "20")

	page, limit, skip := Pagination("3", "10")
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, int64(20), skip)

	// out-of-range values fall back to defaults
	page, limit, skip = Pagination("0", "9999")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, int64(0), skip)

	page, limit, _ = Pagination("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("")
	assert.NoError(t, err)
	assert.Nil(t, b)

	b, err = ParseBoolQuery("true")
	assert.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	_, err = ParseBoolQuery("banana")
	assert.Error(t, err)
}

func TestLockConfigDefaults(t *testing.T) {
	t.Setenv("MAX_LOGIN_ATTEMPTS", "")
	t.Setenv("LOCK_TIME_MINUTES", "")
	assert.Equal(t, 5, MaxLoginAttempts())
	assert.Equal(t, 30*time.Minute, LockDuration())

	t.Setenv("MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("LOCK_TIME_MINUTES", "10")
	assert.Equal(t, 3, MaxLoginAttempts())
	assert.Equal(t, 10*time.Minute, LockDuration())
}

func TestStringsToObjectIDs(t *testing.T) {
	ids, err := StringsToObjectIDs([]string{"64f000000000000000000001", "64f000000000000000000002"})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = StringsToObjectIDs([]string{"not-an-id"})
	assert.Error(t, err)
}
