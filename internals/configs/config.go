package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	SendgridAPIKey   string
	EmailFrom        string
	EmailFromName    string
	Fast2SMSAPIKey   string
	Fast2SMSSenderID string
	SMSEnabled       bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	EmailFrom = GetEnv("EMAIL_FROM")
	EmailFromName = GetEnv("EMAIL_FROM_NAME", "RhythmFlow")
	Fast2SMSAPIKey = GetEnv("FAST2SMS_API_KEY")
	Fast2SMSSenderID = GetEnv("FAST2SMS_SENDER_ID")

	if v, err := strconv.ParseBool(GetEnv("SMS_ENABLED", "false")); err == nil {
		SMSEnabled = v
	}

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	if SendgridAPIKey == "" {
		log.Println("[WARN] SENDGRID_API_KEY is not set, OTP emails will be logged to console")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
