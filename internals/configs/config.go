package configs

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
)

var (
	JWTSecret         string
	GoogleClientID    string
	StripeSecretKey   string
	MidtransServerKey string
	PaymentGateway    string // "stripe" (default) or "midtrans"
	ClientURL         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logger.Log.Warn("no .env file found, using system ENV")
		} else {
			logger.Log.Info(".env file loaded")
		}
	} else {
		logger.Log.Info("running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	StripeSecretKey = GetEnv("STRIPE_SECRET_KEY")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	PaymentGateway = GetEnv("PAYMENT_GATEWAY", "stripe")
	ClientURL = GetEnv("CLIENT_URL", "http://localhost:5173")

	if JWTSecret == "" && GoogleClientID == "" {
		logger.Log.Warn("neither JWT_SECRET nor GOOGLE_CLIENT_ID is set, authenticated routes will reject every caller")
	}
	if PaymentGateway == "stripe" && StripeSecretKey == "" {
		logger.Log.Warn("STRIPE_SECRET_KEY is not set")
	}
	if PaymentGateway == "midtrans" && MidtransServerKey == "" {
		logger.Log.Warn("MIDTRANS_SERVER_KEY is not set")
	}
	logger.Log.Info("config loaded", zap.String("payment_gateway", PaymentGateway))
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
