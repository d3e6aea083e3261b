package meta

// Config controls meta-engine compilation and prefilter behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force plain NFA simulation
//	engine, err := meta.CompileWithConfig(pattern, config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering of Find/IsMatch
	// calls. When false, every search runs the NFA simulator directly.
	// Default: true.
	EnablePrefilter bool

	// MinLiteralLen is the minimum byte length for a literal to be worth
	// building a prefilter from. Shorter literals see too many false
	// positives to pay for themselves. Default: 1.
	MinLiteralLen int

	// MaxLiterals limits how many literals literal.Extractor will return
	// for a single prefix/suffix/inner query. Default: 64.
	MaxLiterals int

	// MaxClassSize limits the size of a character class literal
	// extraction will expand into individual-codepoint literals.
	// Default: 10.
	MaxClassSize int

	// MaxRecursionDepth is checked by Validate but is not passed to
	// literal.Extractor, which stops descending into the AST at its own
	// fixed depth of 100 whatever this value is. Default: 100.
	MaxRecursionDepth int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MinLiteralLen:     1,
		MaxLiterals:       64,
		MaxClassSize:      10,
		MaxRecursionDepth: 100,
	}
}

// Validate checks if the configuration is valid, returning a *ConfigError
// describing the first out-of-range field it finds.
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{Field: "MinLiteralLen", Message: "must be between 1 and 64"}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
		}
		if c.MaxClassSize < 1 || c.MaxClassSize > 1_000 {
			return &ConfigError{Field: "MaxClassSize", Message: "must be between 1 and 1,000"}
		}
	}
	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 10 and 1,000"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "regexautomata: invalid config: " + e.Field + ": " + e.Message
}

// CompileError wraps a pattern compilation failure with the offending
// pattern for context.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return "regexautomata: error compiling pattern `" + e.Pattern + "`: " + e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
