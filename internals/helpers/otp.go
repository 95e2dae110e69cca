package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const OTPTTL = 10 * time.Minute

// GenerateOTP returns a 6-digit numeric one-time passcode.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPExpiry returns the expiry timestamp for a code generated now.
func OTPExpiry() time.Time {
	return time.Now().UTC().Add(OTPTTL)
}

// OTPExpired reports whether a stored expiry has passed. A nil expiry or a
// submission at exactly the expiry instant counts as expired (fail-closed).
func OTPExpired(expires *time.Time, now time.Time) bool {
	if expires == nil {
		return true
	}
	return !now.Before(*expires)
}

// OTPMatches compares a stored code against a submission. Empty or absent
// stored codes never match.
func OTPMatches(stored *string, submitted string) bool {
	if stored == nil || *stored == "" || submitted == "" {
		return false
	}
	return *stored == submitted
}
