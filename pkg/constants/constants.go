// Package constants provides shared constants for the prepay-planner application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// SchedulePadMonths is added to a closed-form month estimate when simulating
	// a schedule; per-month rounding can push the simulated payoff a few months
	// past the analytic value.
	SchedulePadMonths = 5

	// MaxScheduleMonths caps any single amortization run and the accepted loan
	// tenure (50 years).
	MaxScheduleMonths = 600
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default planning configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultOwner is the plan record owner used when a request does not name one
	DefaultOwner = "default"

	// DefaultRateLimitPerMinute is the default per-client request budget
	DefaultRateLimitPerMinute = 30
)

// Storage backend names
const (
	// StorageBackendMemory keeps plan records in process memory
	StorageBackendMemory = "memory"

	// StorageBackendRedis keeps plan records in Redis
	StorageBackendRedis = "redis"
)
