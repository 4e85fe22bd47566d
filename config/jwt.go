package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration = 24 * time.Hour

// InitJWT reads the signing secret from the environment. Called from main
// after godotenv has loaded .env, and from tests that mint their own tokens.
func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
}
