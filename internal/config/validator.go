package config

import "time"

// insecureDefaultPassword is the placeholder shipped in local setups
const insecureDefaultPassword = "postgres"

// Warning messages for settings that load but are probably a mistake
const (
	WarnMsgDefaultDBPassword  = "DB_PASSWORD is the default value - please use a secure password"
	WarnMsgInjuryKeyMissing   = "INJURY_API_URL is set without INJURY_API_KEY - injury requests will be unauthenticated"
	WarnMsgScheduleURLMissing = "SCHEDULE_REFRESH_INTERVAL is set without SCHEDULE_API_URL - schedule refresh is disabled"
	WarnMsgPastVotesInProd    = "ALLOW_PAST_VOTES is enabled in production - picks on concluded games will be graded on submit"
	WarnMsgRedisWithoutFeed   = "REDIS_URL is set without INJURY_API_URL - redis is unused"
	WarnMsgShortInjuryTTL     = "INJURY_CACHE_TTL is under a minute - the injury feed will be polled on most roster loads"
)

// Warnings reports settings that are valid but likely unintended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == insecureDefaultPassword && c.Environment != EnvironmentDev {
		warnings = append(warnings, WarnMsgDefaultDBPassword)
	}

	if c.InjuryAPIURL != "" && c.InjuryAPIKey == "" {
		warnings = append(warnings, WarnMsgInjuryKeyMissing)
	}

	if c.ScheduleRefreshInterval > 0 && c.ScheduleAPIURL == "" {
		warnings = append(warnings, WarnMsgScheduleURLMissing)
	}

	if c.AllowPastVotes && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgPastVotesInProd)
	}

	if c.RedisURL != "" && c.InjuryAPIURL == "" {
		warnings = append(warnings, WarnMsgRedisWithoutFeed)
	}

	if c.InjuryAPIURL != "" && c.InjuryCacheTTL < time.Minute {
		warnings = append(warnings, WarnMsgShortInjuryTTL)
	}

	return warnings
}
