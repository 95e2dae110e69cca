package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhythmflow_backend/internals/configs"
)

func TestCreateLoginToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	studioID := uuid.New()
	tokenString, err := CreateLoginToken(studioID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, studioID.String(), claims["studio_id"])

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, LoginTokenTTL, time.Duration(exp-iat)*time.Second)
}

func TestCreateLoginTokenRejectsWrongKey(t *testing.T) {
	configs.JWTSecret = "test-secret"

	tokenString, err := CreateLoginToken(uuid.New())
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
