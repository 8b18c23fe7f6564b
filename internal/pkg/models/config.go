package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Intake   IntakeConfig
	Match    MatchConfig
	Expiry   ExpiryConfig
	Retry    RetryConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Metrics  MetricsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxConns        int
	IdleConns       int
	ConnMaxLifetime time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// IntakeConfig controls the JetStream pull consumer that feeds the matcher
type IntakeConfig struct {
	Stream          string
	Subject         string
	Consumer        string
	BatchSize       int
	PollWait        time.Duration
	AckWait         time.Duration
	MaxDeliver      int
	RequeueDelay    time.Duration
	RequeueMaxDelay time.Duration
}

// MatchConfig contains candidate search and acceptance tuning
type MatchConfig struct {
	SearchRadiusKm  float64       // great-circle radius around trip origin and destination
	TimeWindow      time.Duration // +/- window around trip departure
	MaxCandidates   int
	CellPrecision   uint // geohash precision of the pre-filter cells
	ScanLimit       int  // rows fetched by the cell pre-filter before the exact predicate
	FanoutLockTTL   time.Duration
	SeatCASAttempts int
}

// ExpiryConfig controls the sweep of stalled pairings and stale trips
type ExpiryConfig struct {
	Enabled    bool
	Interval   time.Duration
	PairingTTL time.Duration
}

// RetryConfig controls backoff at the intake boundary
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	ForwardLogs bool
}

// MetricsConfig controls the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}
