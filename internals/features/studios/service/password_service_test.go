package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPasswordHash(hash, "s3cret-pass"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-pass"))
	assert.Error(t, CheckPasswordHash("not-a-hash", "s3cret-pass"))
}
