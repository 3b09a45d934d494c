package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort       string
	DatabaseURL   string
	JWTSecret     string
	JWTExpiresIn  time.Duration
	CloudinaryURL string
	EmailHost     string
	EmailPort     string
	EmailUser     string
	EmailPassword string
	SenderEmail   string
	FrontendURL   string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = getEnv("APP_PORT", "5000")
	Env.DatabaseURL = os.Getenv("DATABASE_URL")
	Env.JWTSecret = getEnv("JWT_SECRET", "rahasia-tifpoint-jwt-token")
	Env.CloudinaryURL = os.Getenv("CLOUDINARY_URL")
	Env.EmailHost = os.Getenv("EMAIL_HOST")
	Env.EmailPort = getEnv("EMAIL_PORT", "587")
	Env.EmailUser = os.Getenv("EMAIL_USER")
	Env.EmailPassword = os.Getenv("EMAIL_PASSWORD")
	Env.SenderEmail = getEnv("VERIFIED_SENDER_EMAIL", os.Getenv("EMAIL_USER"))
	Env.FrontendURL = getEnv("FRONTEND_URL", "https://tif-point.netlify.app")

	expires := getEnv("JWT_EXPIRES_IN", "168h")
	d, err := time.ParseDuration(expires)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN %q, using 168h", expires)
		d = 168 * time.Hour
	}
	Env.JWTExpiresIn = d
}

func GetJWTSecret() string {
	return Env.JWTSecret
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
