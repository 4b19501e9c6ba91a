package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// External collaborators for the checkout flow.
	PaymentSessionsURL string
	PaymentAPIKey      string
	RatesURL           string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	// Best effort; deployments set real env vars.
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName: getEnv("DB_NAME", "tripgenie"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		PaymentSessionsURL: getEnv("PAYMENT_SESSIONS_URL", "https://payments.local/v1/checkout/sessions"),
		PaymentAPIKey:      strings.TrimSpace(os.Getenv("PAYMENT_API_KEY")),
		RatesURL:           getEnv("RATES_URL", "https://rates.local/rates"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/checkout/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/checkout/cancel"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
