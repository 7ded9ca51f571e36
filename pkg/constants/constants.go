// Package constants provides shared constants for the food-cpi application.
package constants

// DateTimeLayout is the format of month keys in the dataset and is also the
// output date format.
const DateTimeLayout = "2006-01"

// CPI constants
const (
	// BaseIndex is the index value of the base period.
	BaseIndex = 100.0

	// DomainPadding is the padding applied on each side of the value range
	// when charting CPI values.
	DomainPadding = 10.0

	// DisplayPrecision is the number of fractional digits shown for index values.
	DisplayPrecision = 1

	// DefaultRankCount is the number of categories shown in a top/bottom ranking.
	DefaultRankCount = 10

	// DefaultCategory is the category selected for the trend when none is given.
	DefaultCategory = "Food"
)

// View constants
const (
	// ViewTop ranks the most inflated categories first.
	ViewTop = "top"

	// ViewBottom ranks the least inflated categories first.
	ViewBottom = "bottom"
)

// Language constants
const (
	// LanguageEnglish is the canonical language of category labels.
	LanguageEnglish = "en"

	// LanguageFrench is the translated display language.
	LanguageFrench = "fr"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides of configuration keys.
	EnvPrefix = "FOODCPI"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the dashboard
	DefaultServerAddress = ":8080"

	// DefaultReadTimeout is the default HTTP read timeout.
	DefaultReadTimeout = "10s"

	// DefaultWriteTimeout is the default HTTP write timeout.
	DefaultWriteTimeout = "30s"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "15s"

	// DefaultChartBurst is the chart burst used when only chartRateLimit is set.
	DefaultChartBurst = 5

	// MaxRankCount caps the n accepted from HTTP clients.
	MaxRankCount = 500
)

// Chart colours, as hex RGB without the leading '#'.
const (
	ColorTop    = "ef4444"
	ColorBottom = "10b981"
	ColorTrend  = "3b82f6"
)
