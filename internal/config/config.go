package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	ApplicationName    string
}

// MinIOConfig holds object storage settings for MinIO.
// PublicURL, when set, is used to build permanent object URLs instead of presigned ones.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// OTPConfig controls one-time password lifetime and resend throttling.
type OTPConfig struct {
	TTL            time.Duration
	ResendCooldown time.Duration
}

// SMTPConfig holds outgoing mail settings. An empty Host disables delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// RedisConfig holds cache settings. An empty Addr disables redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PushyConfig holds push notification gateway settings.
type PushyConfig struct {
	SecretKey string
	APIURL    string
}

// RoboflowConfig holds hosted image-inference settings.
type RoboflowConfig struct {
	APIKey       string
	ModelID      string
	InferenceURL string
}

// SymptomModelConfig points to the exported symptom classifier and its metadata.
type SymptomModelConfig struct {
	ModelPath    string
	FeaturesPath string
	LabelsPath   string
	RuntimeLib   string
	InputName    string
	OutputName   string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	PublicBaseURL    string
	TimeZone         string
	LogLevel         string
	CORSAllowOrigins string
	AlertInterval    time.Duration
	Database         DatabaseConfig
	MinIO            MinIOConfig
	JWT              JWTConfig
	OTP              OTPConfig
	SMTP             SMTPConfig
	Redis            RedisConfig
	Pushy            PushyConfig
	Roboflow         RoboflowConfig
	SymptomModel     SymptomModelConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		TimeZone:         getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		AlertInterval:    getEnvDuration("ALERT_DISPATCH_INTERVAL", time.Minute),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ApplicationName:    getEnv("DB_APP_NAME", "petcare-api"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: strings.TrimRight(getEnv("MINIO_PUBLIC_URL", ""), "/"),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
			AccessTTL:     getEnvDuration("JWT_ACCESS_TTL", 120*time.Hour),
			RefreshTTL:    getEnvDuration("JWT_REFRESH_TTL", 168*time.Hour),
		},
		OTP: OTPConfig{
			TTL:            getEnvDuration("OTP_TTL", 5*time.Minute),
			ResendCooldown: getEnvDuration("OTP_RESEND_COOLDOWN", time.Minute),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@petcare.com"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Pushy: PushyConfig{
			SecretKey: getEnv("PUSHY_SECRET_KEY", ""),
			APIURL:    getEnv("PUSHY_API_URL", "https://api.pushy.me/send"),
		},
		Roboflow: RoboflowConfig{
			APIKey:       getEnv("ROBOFLOW_API_KEY", ""),
			ModelID:      getEnv("ROBOFLOW_MODEL_ID", ""),
			InferenceURL: strings.TrimRight(getEnv("ROBOFLOW_INFERENCE_URL", "https://detect.roboflow.com"), "/"),
		},
		SymptomModel: SymptomModelConfig{
			ModelPath:    getEnv("SYMPTOM_MODEL_PATH", ""),
			FeaturesPath: getEnv("SYMPTOM_FEATURES_PATH", ""),
			LabelsPath:   getEnv("SYMPTOM_LABELS_PATH", ""),
			RuntimeLib:   getEnv("ONNXRUNTIME_LIB", ""),
			InputName:    getEnv("SYMPTOM_MODEL_INPUT", "float_input"),
			OutputName:   getEnv("SYMPTOM_MODEL_OUTPUT", "probabilities"),
		},
	}
}

// Location resolves TimeZone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
