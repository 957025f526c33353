package config

import "time"

// Defaults applied when an environment variable is unset or invalid
const (
	DefaultPort                     = 8080
	DefaultDBMaxConns               = 20
	DefaultDBMaxConnIdleTime        = 5 * time.Minute
	DefaultDBMaxConnLifetime        = 30 * time.Minute
	DefaultConfidenceOffset         = 2
	DefaultSeasonCutover            = "10-01"
	DefaultTimezone                 = "UTC"
	DefaultInjuryCacheTTL           = 15 * time.Minute
	DefaultScheduleDaysAhead        = 30
	DefaultDailyResultsLookbackDays = 7
	DefaultHTTPClientTimeout        = 10 * time.Second

	// SeasonCutoverLayout is the month-day format of SEASON_CUTOVER
	SeasonCutoverLayout = "01-02"
)

// Error messages
const (
	ErrMsgInvalidPort             = "invalid PORT value"
	ErrMsgAPIKeyRequired          = "API_KEY environment variable must be set for security"
	ErrMsgInvalidSeasonCutover    = "invalid SEASON_CUTOVER value, expected MM-DD"
	ErrMsgInvalidConfidenceOffset = "CONFIDENCE_OFFSET must not be negative"
	ErrMsgInvalidTimezone         = "invalid TIMEZONE value"
)

// Environment names matched by ENVIRONMENT
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
)
