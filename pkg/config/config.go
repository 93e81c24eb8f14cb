package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigins []string

	DatabaseDSN string

	SecretKey         string
	AccessTokenExpiry time.Duration

	// ApprovalRate is the probability that a submitted archive is approved
	// immediately after creation.
	ApprovalRate float64

	FirebaseCredentials string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
	KafkaTLS      bool

	GoogleProjectID   string
	GooglePubSubTopic string
	GoogleCredentials string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 1440 * time.Minute
	if exp := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); exp != "" {
		if minutes, err := strconv.Atoi(exp); err == nil && minutes > 0 {
			accessExpiry = time.Duration(minutes) * time.Minute
		}
	}

	approvalRate := 0.8
	if rate := os.Getenv("APPROVAL_RATE"); rate != "" {
		if parsed, err := strconv.ParseFloat(rate, 64); err == nil && parsed >= 0 && parsed <= 1 {
			approvalRate = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "*")),
		DatabaseDSN:         getEnv("DATABASE_DSN", ""),
		SecretKey:           getEnv("SECRET_KEY", "default-secret-key"),
		AccessTokenExpiry:   accessExpiry,
		ApprovalRate:        approvalRate,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		KafkaBroker:         getEnv("KAFKA_BROKER", ""),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "growth-archive-events"),
		KafkaUsername:       getEnv("KAFKA_USERNAME", ""),
		KafkaPassword:       getEnv("KAFKA_PASSWORD", ""),
		KafkaTLS:            getEnv("KAFKA_TLS", "false") == "true",
		GoogleProjectID:     getEnv("GOOGLE_PROJECT_ID", ""),
		GooglePubSubTopic:   getEnv("GOOGLE_PUBSUB_TOPIC", "growth-archive-events"),
		GoogleCredentials:   getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		S3Region:            getEnv("S3_REGION", "us-east-1"),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3AccessKey:         getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:         getEnv("S3_SECRET_KEY", ""),
		S3PublicBaseURL:     getEnv("S3_PUBLIC_BASE_URL", ""),
	}
}

// S3Enabled reports whether enough settings are present to presign uploads.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
