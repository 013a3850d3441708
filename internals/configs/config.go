package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"learnsmate_backend/internals/logger"
)

var (
	JWTSecret        string
	JWTAccessTTL     time.Duration
	FrontendOrigin   string
	GoogleClientID   string
	TokenCleanupTick time.Duration
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CoolSmsConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Sender    string
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

type MidtransConfig struct {
	ServerKey  string
	Production bool
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logger.Log.Warn("no .env file found, using system environment")
		} else {
			logger.Log.Info(".env file loaded")
		}
	} else {
		logger.Log.Info("running on Railway, using system environment")
	}

	logger.Setup(GetEnv("LOG_LEVEL", "info"), GetEnv("LOG_FORMAT", "text"))

	JWTSecret = GetEnv("JWT_SECRET")
	JWTAccessTTL = time.Duration(GetEnvInt("JWT_ACCESS_TTL_HOURS", 24)) * time.Hour
	FrontendOrigin = GetEnv("FRONTEND_ORIGIN", "http://localhost:5173")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	TokenCleanupTick = time.Duration(GetEnvInt("TOKEN_CLEANUP_INTERVAL_HOURS", 24)) * time.Hour

	if JWTSecret == "" {
		logger.Log.Error("JWT_SECRET is not set")
	} else {
		logger.Log.Info("JWT_SECRET loaded")
	}
	if GoogleClientID == "" {
		logger.Log.Warn("GOOGLE_CLIENT_ID is not set, Google login disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Database() DatabaseConfig {
	return DatabaseConfig{
		Host:     GetEnv("DB_HOST", "localhost"),
		Port:     GetEnv("DB_PORT", "5432"),
		User:     GetEnv("DB_USER"),
		Password: GetEnv("DB_PASSWORD"),
		Name:     GetEnv("DB_NAME", "learnsmate"),
		SSLMode:  GetEnv("DB_SSLMODE", "disable"),
	}
}

func Redis() RedisConfig {
	return RedisConfig{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       GetEnvInt("REDIS_DB", 0),
	}
}

func CoolSms() CoolSmsConfig {
	return CoolSmsConfig{
		APIKey:    GetEnv("COOLSMS_API_KEY"),
		APISecret: GetEnv("COOLSMS_API_SECRET"),
		BaseURL:   GetEnv("COOLSMS_API_BASE_URL", "https://api.coolsms.co.kr"),
		Sender:    GetEnv("COOLSMS_SENDER"),
	}
}

func MinIO() MinIOConfig {
	return MinIOConfig{
		Endpoint:   GetEnv("MINIO_ENDPOINT"),
		AccessKey:  GetEnv("MINIO_ACCESS_KEY"),
		SecretKey:  GetEnv("MINIO_SECRET_KEY"),
		Bucket:     GetEnv("MINIO_BUCKET", "learnsmate"),
		UseSSL:     GetEnvBool("MINIO_USE_SSL", false),
		PublicBase: GetEnv("MINIO_PUBLIC_BASE_URL"),
	}
}

func Midtrans() MidtransConfig {
	return MidtransConfig{
		ServerKey:  GetEnv("MIDTRANS_SERVER_KEY"),
		Production: GetEnvBool("MIDTRANS_USE_PROD", false),
	}
}
