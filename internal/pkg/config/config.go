package config

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file and the process environment.
// Environment variables always win over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "match-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9993)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("MATCH_WEIGHT_DISTANCE", 0.45)
	v.SetDefault("MATCH_WEIGHT_REPUTATION", 0.40)
	v.SetDefault("MATCH_WEIGHT_ACCESSIBILITY", 0.15)
	v.SetDefault("MATCH_RATING_BLEND", 0.7)
	v.SetDefault("MATCH_RIDES_CAP", 50)
	v.SetDefault("MATCH_DEFAULT_LIMIT", 20)
	v.SetDefault("MATCH_MAX_LIMIT", 100)
	v.SetDefault("MATCH_PREFETCH_LIMIT", 500)
	v.SetDefault("MATCH_RATE_LIMIT_PER_MINUTE", 120)

	v.SetDefault("CACHE_BACKEND", "redis")
	v.SetDefault("CACHE_TTL_SECONDS", 60)
	v.SetDefault("CACHE_STORE_TIMEOUT_MS", 50)
	v.SetDefault("CACHE_SWEEP_SECONDS", 30)
	v.SetDefault("CACHE_MAX_ENTRIES", 10000)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.InstanceID = v.GetString("APP_INSTANCE_ID")
	if configs.App.InstanceID == "" {
		configs.App.InstanceID = uuid.NewString()
	}

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// Match config
	configs.Match.DistanceWeight = v.GetFloat64("MATCH_WEIGHT_DISTANCE")
	configs.Match.ReputationWeight = v.GetFloat64("MATCH_WEIGHT_REPUTATION")
	configs.Match.AccessibilityWeight = v.GetFloat64("MATCH_WEIGHT_ACCESSIBILITY")
	configs.Match.RatingBlend = v.GetFloat64("MATCH_RATING_BLEND")
	configs.Match.RidesCap = v.GetInt("MATCH_RIDES_CAP")
	configs.Match.DefaultLimit = v.GetInt("MATCH_DEFAULT_LIMIT")
	configs.Match.MaxLimit = v.GetInt("MATCH_MAX_LIMIT")
	configs.Match.PrefetchLimit = v.GetInt("MATCH_PREFETCH_LIMIT")
	configs.Match.RateLimitPerMinute = v.GetInt("MATCH_RATE_LIMIT_PER_MINUTE")

	// Cache config
	configs.Cache.Backend = v.GetString("CACHE_BACKEND")
	configs.Cache.TTLSeconds = v.GetInt("CACHE_TTL_SECONDS")
	configs.Cache.StoreTimeoutMs = v.GetInt("CACHE_STORE_TIMEOUT_MS")
	configs.Cache.SweepSeconds = v.GetInt("CACHE_SWEEP_SECONDS")
	configs.Cache.MaxEntries = v.GetInt("CACHE_MAX_ENTRIES")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// Internal API keys
	configs.APIKeys.AdminService = v.GetString("ADMIN_SERVICE_API_KEY")
	configs.APIKeys.BookingService = v.GetString("BOOKING_SERVICE_API_KEY")
	configs.APIKeys.MatchService = v.GetString("MATCH_SERVICE_API_KEY")

	return configs
}

// GetEnv returns an environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	v := viper.New()
	v.AutomaticEnv()
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
