// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const referralCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode returns a short uppercase code suitable for sharing
// verbally; ambiguous characters are excluded.
func GenerateReferralCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(referralCharset)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = referralCharset[n.Int64()]
	}

	return string(code), nil
}
