package config

const (
	defaultConfigPath        = "~/.config/subpal/config.toml"
	projectConfigName        = "subpal.toml"
	defaultStrategy          = "hybrid"
	defaultTimeTolerance     = 0.5
	defaultContentThreshold  = 0.6
	defaultMinAlignmentScore = 0.4
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	envStrategy = "SUBPAL_STRATEGY"
	envLogLevel = "SUBPAL_LOG_LEVEL"
)

// Output formats accepted by output.format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatSRT   = "srt"
	FormatVTT   = "vtt"
	FormatPlain = "plain"
)

// OutputFormats lists every accepted output format.
func OutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatSRT, FormatVTT, FormatPlain}
}

// strategyNames are the accepted alignment.strategy values, aliases included.
var strategyNames = map[string]string{
	"time":             "time",
	"time-based":       "time",
	"content":          "content",
	"content-based":    "content",
	"enhanced-content": "enhanced-content",
	"semantic":         "enhanced-content",
	"hybrid":           "hybrid",
}

// Default returns a Config populated with repository defaults. Strategy and
// log level stay empty so environment fallbacks can apply during Load.
func Default() Config {
	return Config{
		Alignment: Alignment{
			TimeTolerance:     defaultTimeTolerance,
			ContentThreshold:  defaultContentThreshold,
			MinAlignmentScore: defaultMinAlignmentScore,
		},
		Captions: Captions{
			StripMarkup:          true,
			FilterAdvertisements: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
