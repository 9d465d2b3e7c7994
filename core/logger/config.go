package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoding: "json" for production, "console" for
	// human-readable development output.
	Format string `mapstructure:"format" default:"console"`
}
