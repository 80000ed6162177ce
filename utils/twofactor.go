package utils

import (
	"crypto/rand"
	"math/big"
	"time"
)

const TwoFactorCodeTTL = 10 * time.Minute

// GenerateTwoFactorCode returns a 6-digit numeric code from crypto/rand.
func GenerateTwoFactorCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := n.Int64()

	digits := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + code%10)
		code /= 10
	}
	return string(digits), nil
}
