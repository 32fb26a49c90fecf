package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Board struct {
	Storage              string
	SeedFile             string
	IDStrategy           string
	SubmitDelay          time.Duration
	PersistGuestMessages bool
}

type Auth struct {
	LoginDelay    time.Duration
	SignupDelay   time.Duration
	DemoEmail     string
	DemoPassword  string
	AdminEmail    string
	AdminPassword string
}

type Config struct {
	ServerPort          int
	DB                  DB
	MinIO               MinIO
	Board               Board
	Auth                Auth
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	MaxUploadSize       int64
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	IDStrategyUnique = "unique"
	IDStrategyLegacy = "legacy"
)

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "wuddevdet"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

// LoadMinIO leaves Endpoint empty unless configured; avatar uploads are
// disabled in that case.
func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "avatars"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadBoard() Board {
	return Board{
		Storage:              getEnv("BOARD_STORAGE", StorageMemory),
		SeedFile:             getEnv("SEED_FILE", ""),
		IDStrategy:           getEnv("ID_STRATEGY", IDStrategyUnique),
		SubmitDelay:          parseDuration(getEnv("SUBMIT_DELAY", "1s"), time.Second),
		PersistGuestMessages: getEnvBool("GUEST_MESSAGES_PERSIST", false),
	}
}

func LoadAuth() Auth {
	return Auth{
		LoginDelay:    parseDuration(getEnv("LOGIN_DELAY", "1s"), time.Second),
		SignupDelay:   parseDuration(getEnv("SIGNUP_DELAY", "1500ms"), 1500*time.Millisecond),
		DemoEmail:     getEnv("DEMO_EMAIL", "demo@wuddevdet.com"),
		DemoPassword:  getEnv("DEMO_PASSWORD", "password"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@wuddevdet.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 8080),
		DB:                  LoadDB(),
		MinIO:               LoadMinIO(),
		Board:               LoadBoard(),
		Auth:                LoadAuth(),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		MaxUploadSize:       parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "2097152")),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 2 * 1024 * 1024
	}
	return size
}
