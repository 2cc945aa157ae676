package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by the application.
const (
	DriverSurreal   = "surreal"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and stores depend on this interface so tests can supply their own.
type Provider interface {
	GetStoreDriver() string

	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration

	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int

	GetFirebaseProjectID() string
	GetFirebaseCredentialsFile() string
	GetFirebaseAPIKey() string

	GetAppBaseURL() string
	GetAppAddr() string
	GetSessionSecret() string
	GetAuthRateLimit() float64

	GetEmailProvider() string
	GetEmailSender() string
	GetEmailAPIKey() string
}

// Config holds all configuration for the application.
type Config struct {
	StoreDriver string

	DBUrl            string
	DBNs             string
	DBDb             string
	DBUser           string
	DBPass           string
	DBQueryTimeout   time.Duration
	DBExecuteTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FirebaseProjectID       string
	FirebaseCredentialsFile string
	FirebaseAPIKey          string

	AppBaseURL    string
	AppAddr       string
	SessionSecret string
	AuthRateLimit float64

	EmailProvider string
	EmailSender   string
	EmailAPIKey   string
}

// New loads configuration from a .env file (when present) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverSurreal)),

		DBUrl:            os.Getenv("SURREAL_URL"),
		DBNs:             os.Getenv("SURREAL_NS"),
		DBDb:             os.Getenv("SURREAL_DB"),
		DBUser:           os.Getenv("SURREAL_USER"),
		DBPass:           os.Getenv("SURREAL_PASS"),
		DBQueryTimeout:   getEnvAsDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		DBExecuteTimeout: getEnvAsDuration("DB_EXECUTE_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),

		AppBaseURL:    strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
		AppAddr:       getEnv("SERVER_ADDR", ":8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AuthRateLimit: getEnvAsFloat("AUTH_RATE_LIMIT", 10),

		EmailProvider: getEnv("EMAIL_PROVIDER", "log"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
	}
}

// Validate reports missing values required by the selected store driver.
func (c *Config) Validate() error {
	var missing []string
	switch c.StoreDriver {
	case DriverSurreal:
		if c.DBUrl == "" {
			missing = append(missing, "SURREAL_URL")
		}
		if c.DBNs == "" {
			missing = append(missing, "SURREAL_NS")
		}
		if c.DBDb == "" {
			missing = append(missing, "SURREAL_DB")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case DriverFirestore:
		if c.FirebaseProjectID == "" {
			missing = append(missing, "FIREBASE_PROJECT_ID")
		}
		if c.FirebaseAPIKey == "" {
			missing = append(missing, "FIREBASE_API_KEY")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %s, %s or %s)", c.StoreDriver, DriverSurreal, DriverRedis, DriverFirestore)
	}
	if c.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) GetStoreDriver() string             { return c.StoreDriver }
func (c *Config) GetDBURL() string                   { return c.DBUrl }
func (c *Config) GetDBNs() string                    { return c.DBNs }
func (c *Config) GetDBDb() string                    { return c.DBDb }
func (c *Config) GetDBUser() string                  { return c.DBUser }
func (c *Config) GetDBPass() string                  { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration   { return c.DBQueryTimeout }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
func (c *Config) GetRedisAddr() string               { return c.RedisAddr }
func (c *Config) GetRedisPassword() string           { return c.RedisPassword }
func (c *Config) GetRedisDB() int                    { return c.RedisDB }
func (c *Config) GetFirebaseProjectID() string       { return c.FirebaseProjectID }
func (c *Config) GetFirebaseCredentialsFile() string { return c.FirebaseCredentialsFile }
func (c *Config) GetFirebaseAPIKey() string          { return c.FirebaseAPIKey }
func (c *Config) GetAppBaseURL() string              { return c.AppBaseURL }
func (c *Config) GetAppAddr() string                 { return c.AppAddr }
func (c *Config) GetSessionSecret() string           { return c.SessionSecret }
func (c *Config) GetAuthRateLimit() float64          { return c.AuthRateLimit }
func (c *Config) GetEmailProvider() string           { return c.EmailProvider }
func (c *Config) GetEmailSender() string             { return c.EmailSender }
func (c *Config) GetEmailAPIKey() string             { return c.EmailAPIKey }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvAsFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("Invalid number for %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}

// getEnvAsDuration accepts Go duration strings ("5s") as well as bare seconds ("5").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid duration for %s=%q, using default %s", key, v, fallback)
	return fallback
}
