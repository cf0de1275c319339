package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings for the user store.
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
}

// MinIOConfig holds object storage settings for the optional upload
// archive.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds token issuance settings. The secret must come from the
// environment; there is no safe default.
type AuthConfig struct {
	JWTSecret        string
	AccessTTLMinutes int
	RefreshTTLDays   int
}

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	// Workers bounds concurrently executing analyses.
	Workers int
	// MaxUploadBytes limits the request body size.
	MaxUploadBytes int
	// ArchiveUploads enables best-effort archiving of raw uploads to
	// object storage.
	ArchiveUploads bool
}

// AppConfig is the centralized configuration struct for the application,
// populated from environment variables.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
	Analysis AnalysisConfig
}

// Load reads configuration from environment variables. A .env file can be
// auto-loaded by importing: _ "github.com/joho/godotenv/autoload"; real
// environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8000"),
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
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("SECRET_KEY", ""),
			AccessTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
			RefreshTTLDays:   getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		},
		Analysis: AnalysisConfig{
			Workers:        getEnvInt("ANALYZE_WORKERS", 4),
			MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 10<<20),
			ArchiveUploads: getEnvBool("ARCHIVE_UPLOADS", false),
		},
	}
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
