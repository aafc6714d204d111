package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	MinIO    MinIOConfig
	Clinic   ClinicConfig
}

type AppConfig struct {
	Port    string
	Env     string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret          string
	ExpireHours     int
	RefreshExpHours int
}

type MinIOConfig struct {
	Endpoint string
	User     string
	Password string
	Bucket   string
	UseSSL   bool
}

// ClinicConfig adalah identitas klinik yang dicetak di kop surat
type ClinicConfig struct {
	Name          string
	Address       string
	InstitutionID string
	HeadName      string
	HeadNIP       string
}

func Load() *Config {
	// Load .env jika ada (development), di production pakai env variable langsung
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	jwtExpire, _ := strconv.Atoi(getEnv("JWT_EXPIRE_HOURS", "24"))
	jwtRefreshExpire, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRE_HOURS", "168"))
	minioSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		App: AppConfig{
			Port:    getEnv("APP_PORT", "8080"),
			Env:     getEnv("APP_ENV", "development"),
			BaseURL: getEnv("APP_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "clinic_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "clinic_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-this-secret"),
			ExpireHours:     jwtExpire,
			RefreshExpHours: jwtRefreshExpire,
		},
		MinIO: MinIOConfig{
			Endpoint: getEnv("MINIO_ENDPOINT", "localhost:9000"),
			User:     getEnv("MINIO_USER", "minioadmin"),
			Password: getEnv("MINIO_PASSWORD", "minioadmin123"),
			Bucket:   getEnv("MINIO_BUCKET", "clinic-documents"),
			UseSSL:   minioSSL,
		},
		Clinic: ClinicConfig{
			Name:          getEnv("CLINIC_NAME", "Klinik Kesehatan Kampus"),
			Address:       getEnv("CLINIC_ADDRESS", "Jl. Pendidikan No. 1"),
			InstitutionID: getEnv("CLINIC_INSTITUTION_ID", "DMC"),
			HeadName:      getEnv("CLINIC_HEAD_NAME", "Kepala Klinik"),
			HeadNIP:       getEnv("CLINIC_HEAD_NIP", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
