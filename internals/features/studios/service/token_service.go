package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"rhythmflow_backend/internals/configs"
)

// Bearer tokens carry the studio id and nothing else; 7-day fixed expiry,
// no refresh mechanism.
const LoginTokenTTL = 7 * 24 * time.Hour

func CreateLoginToken(studioID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"studio_id": studioID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(LoginTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
