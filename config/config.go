package config

import (
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type AppConfig struct {
	Port           string
	Database       DatabaseConfig
	S3             S3Config
	JWTSecret      string
	Environment    string
	MaxUploadBytes int64
	AllowedOrigins []string
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "resumematch"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetS3Config() S3Config {
	return S3Config{
		Region:    getEnv("AWS_REGION", "us-east-1"),
		Bucket:    getEnv("AWS_S3_BUCKET", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}
}

func GetAppConfig() AppConfig {
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)

	return AppConfig{
		Port:           getEnv("PORT", "8081"),
		Database:       GetDatabaseConfig(),
		S3:             GetS3Config(),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MaxUploadBytes: maxUpload,
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
