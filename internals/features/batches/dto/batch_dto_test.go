package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "morning", NormalizeName("Morning"))
	assert.Equal(t, "morning", NormalizeName("  morning "))
	assert.Equal(t, "morning batch", NormalizeName("MORNING Batch"))

	// Two names the studio would consider "the same batch" collapse to one key.
	assert.Equal(t, NormalizeName("Morning"), NormalizeName("morning "))
}

func TestValidateDays(t *testing.T) {
	assert.NoError(t, ValidateDays([]string{"Mon", "Wed", "Fri"}))
	assert.NoError(t, ValidateDays([]string{"Sun"}))

	err := ValidateDays(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	err = ValidateDays([]string{"Mon", "Monday", "funday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Monday")
	assert.Contains(t, err.Error(), "funday")
	assert.NotContains(t, err.Error(), "Mon,")

	// Tokens are case-sensitive.
	assert.Error(t, ValidateDays([]string{"mon"}))
}
