package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host image

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // guards the admin routes

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Pick rules
	AllowPastVotes   bool
	ConfidenceOffset int
	SeasonCutover    string // MM-DD
	// Timezone is the IANA zone whose midnight starts a new game day
	Timezone string

	// Injury feed
	InjuryAPIURL   string
	InjuryAPIKey   string
	InjuryCacheTTL time.Duration
	RedisURL       string

	// Schedule feed
	ScheduleAPIURL          string
	ScheduleAPIKey          string
	ScheduleRefreshInterval time.Duration
	ScheduleDaysAhead       int

	// Caches
	CacheTTL                 time.Duration
	DailyResultsLookbackDays int
	HTTPClientTimeout        time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "pickem"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", EnvironmentDev),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "pickem"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		AllowPastVotes:   getEnvAsBool("ALLOW_PAST_VOTES", false),
		ConfidenceOffset: getEnvAsInt("CONFIDENCE_OFFSET", DefaultConfidenceOffset),
		SeasonCutover:    getEnv("SEASON_CUTOVER", DefaultSeasonCutover),
		Timezone:         getEnv("TIMEZONE", DefaultTimezone),

		InjuryAPIURL:   getEnv("INJURY_API_URL", ""),
		InjuryAPIKey:   getEnv("INJURY_API_KEY", ""),
		InjuryCacheTTL: getEnvAsDuration("INJURY_CACHE_TTL", DefaultInjuryCacheTTL),
		RedisURL:       getEnv("REDIS_URL", ""),

		ScheduleAPIURL:          getEnv("SCHEDULE_API_URL", ""),
		ScheduleAPIKey:          getEnv("SCHEDULE_API_KEY", ""),
		ScheduleRefreshInterval: getEnvAsDuration("SCHEDULE_REFRESH_INTERVAL", 0),
		ScheduleDaysAhead:       getEnvAsInt("SCHEDULE_DAYS_AHEAD", DefaultScheduleDaysAhead),

		CacheTTL:                 getEnvAsDuration("CACHE_TTL", 0),
		DailyResultsLookbackDays: getEnvAsInt("DAILY_RESULTS_LOOKBACK_DAYS", DefaultDailyResultsLookbackDays),
		HTTPClientTimeout:        getEnvAsDuration("HTTP_CLIENT_TIMEOUT", DefaultHTTPClientTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if _, err := time.Parse(SeasonCutoverLayout, cfg.SeasonCutover); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSeasonCutover, err)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTimezone, err)
	}

	if cfg.ConfidenceOffset < 0 {
		return nil, errors.New(ErrMsgInvalidConfidenceOffset)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a time.Duration variable such as "15m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

// splitList parses a comma separated list, dropping empty items
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Location returns the configured game day time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// InjuryFeedEnabled reports whether an injury feed endpoint is configured
func (c *Config) InjuryFeedEnabled() bool {
	return c.InjuryAPIURL != ""
}

// ScheduleRefreshEnabled reports whether the periodic schedule refresh should run
func (c *Config) ScheduleRefreshEnabled() bool {
	return c.ScheduleAPIURL != "" && c.ScheduleRefreshInterval > 0
}
