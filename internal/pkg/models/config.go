package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Match    MatchConfig
	Cache    CacheConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	APIKeys  APIKeysConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	InstanceID  string // identifies this replica on published events
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
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

// MatchConfig holds the scoring weights and tuning constants of the matching engine
type MatchConfig struct {
	DistanceWeight      float64 `json:"distance_weight"`
	ReputationWeight    float64 `json:"reputation_weight"`
	AccessibilityWeight float64 `json:"accessibility_weight"`
	RatingBlend         float64 `json:"rating_blend"`          // share of reputation taken from rating, rest from experience
	RidesCap            int     `json:"rides_cap"`             // completed rides beyond this add nothing
	DefaultLimit        int     `json:"default_limit"`         // page size when the caller gives none
	MaxLimit            int     `json:"max_limit"`             // hard cap on page size
	PrefetchLimit       int     `json:"prefetch_limit"`        // max open bookings loaded per request
	RateLimitPerMinute  int     `json:"rate_limit_per_minute"` // match lookups per driver per minute, 0 disables
}

// CacheConfig controls the match cache
type CacheConfig struct {
	Backend        string // "redis" or "memory"
	TTLSeconds     int
	StoreTimeoutMs int
	SweepSeconds   int
	MaxEntries     int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// APIKeysConfig holds the keys accepted on internal routes, keyed by caller service
type APIKeysConfig struct {
	AdminService   string
	BookingService string
	MatchService   string
}
