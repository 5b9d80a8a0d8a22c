package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var JWTSecret string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found, using process environment")
	}

	JWTSecret = os.Getenv("JWT_SECRET")

	if JWTSecret == "" {
		log.Println("[WARNING] JWT_SECRET is empty; protected routes will reject every token")
	}
}

// GetEnv reads a key with a fallback default.
func GetEnv(key string, def ...string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}
