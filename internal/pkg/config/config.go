package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/barengan/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "barengan-matcher")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second)
	configs.Server.WriteTimeout = GetEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second)
	configs.Server.ShutdownTimeout = GetEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "barengan")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)
	configs.Database.ConnMaxLifetime = GetEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// Intake config
	configs.Intake.Stream = GetEnv("INTAKE_STREAM", "RIDE_EVENTS")
	configs.Intake.Subject = GetEnv("INTAKE_SUBJECT", "ride.events")
	configs.Intake.Consumer = GetEnv("INTAKE_CONSUMER", "matcher")
	configs.Intake.BatchSize = GetEnvAsInt("INTAKE_BATCH_SIZE", 10)
	configs.Intake.PollWait = GetEnvAsDuration("INTAKE_POLL_WAIT", 20*time.Second)
	configs.Intake.AckWait = GetEnvAsDuration("INTAKE_ACK_WAIT", 60*time.Second)
	configs.Intake.MaxDeliver = GetEnvAsInt("INTAKE_MAX_DELIVER", 10)
	configs.Intake.RequeueDelay = GetEnvAsDuration("INTAKE_REQUEUE_DELAY", 10*time.Second)
	configs.Intake.RequeueMaxDelay = GetEnvAsDuration("INTAKE_REQUEUE_MAX_DELAY", 5*time.Minute)

	// Match config
	configs.Match.SearchRadiusKm = GetEnvAsFloat("MATCH_SEARCH_RADIUS_KM", 10.0)
	configs.Match.TimeWindow = GetEnvAsDuration("MATCH_TIME_WINDOW", 20*time.Minute)
	configs.Match.MaxCandidates = GetEnvAsInt("MATCH_MAX_CANDIDATES", 10)
	configs.Match.CellPrecision = uint(GetEnvAsInt("MATCH_CELL_PRECISION", 4))
	configs.Match.ScanLimit = GetEnvAsInt("MATCH_SCAN_LIMIT", 200)
	configs.Match.FanoutLockTTL = GetEnvAsDuration("MATCH_FANOUT_LOCK_TTL", 30*time.Second)
	configs.Match.SeatCASAttempts = GetEnvAsInt("MATCH_SEAT_CAS_ATTEMPTS", 5)

	// Expiry config
	configs.Expiry.Enabled = GetEnvAsBool("EXPIRY_ENABLED", true)
	configs.Expiry.Interval = GetEnvAsDuration("EXPIRY_INTERVAL", time.Minute)
	configs.Expiry.PairingTTL = GetEnvAsDuration("EXPIRY_PAIRING_TTL", 30*time.Minute)

	// Retry config
	configs.Retry.MaxRetries = GetEnvAsInt("RETRY_MAX_RETRIES", 3)
	configs.Retry.BaseDelay = GetEnvAsDuration("RETRY_BASE_DELAY", 200*time.Millisecond)
	configs.Retry.MaxDelay = GetEnvAsDuration("RETRY_MAX_DELAY", 5*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "barengan-matcher")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Metrics config
	configs.Metrics.Enabled = GetEnvAsBool("METRICS_ENABLED", true)
	configs.Metrics.Path = GetEnv("METRICS_PATH", "/metrics")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings such as "20s" or "1m30s"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
