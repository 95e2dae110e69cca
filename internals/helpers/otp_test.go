package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q has non-digit %q", code, r)
		}
	}
}

func TestOTPExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, OTPExpired(nil, now), "nil expiry must count as expired")

	future := now.Add(time.Minute)
	assert.False(t, OTPExpired(&future, now))

	past := now.Add(-time.Second)
	assert.True(t, OTPExpired(&past, now))

	// Exactly at the expiry instant the code is already dead.
	exact := now
	assert.True(t, OTPExpired(&exact, now))
}

func TestOTPExpiryUsesTTL(t *testing.T) {
	before := time.Now().UTC().Add(OTPTTL)
	got := OTPExpiry()
	after := time.Now().UTC().Add(OTPTTL)

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestOTPMatches(t *testing.T) {
	code := "042137"

	assert.True(t, OTPMatches(&code, "042137"))
	assert.False(t, OTPMatches(&code, "042138"))
	assert.False(t, OTPMatches(&code, ""))
	assert.False(t, OTPMatches(nil, "042137"))

	empty := ""
	assert.False(t, OTPMatches(&empty, ""))
}
