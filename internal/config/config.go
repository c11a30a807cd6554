// Package config provides configuration structures and loading for seqsample.
package config

// Config represents the complete application configuration.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling" mapstructure:"sampling"`
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// SamplingConfig represents sampling loop and progress settings.
type SamplingConfig struct {
	// ReportIntervalBases is the spacing, in cumulative bases, between
	// progress reports. A report is emitted when the running total is an
	// exact multiple of this value.
	ReportIntervalBases int64 `yaml:"report_interval_bases" mapstructure:"report_interval_bases"`
}

// InputConfig represents input stream settings.
type InputConfig struct {
	// HTTPTimeoutSeconds bounds the whole HTTP download. 0 means no timeout,
	// which is the right default for multi-gigabyte read containers.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" mapstructure:"http_timeout_seconds"`
	// DecompressWorkers is the BGZF decompression worker count for BAM
	// input. The sampling pass itself is strictly sequential.
	DecompressWorkers int `yaml:"decompress_workers" mapstructure:"decompress_workers"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
// seqsample runs entirely on these defaults when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Sampling: SamplingConfig{
			ReportIntervalBases: 100_000,
		},
		Input: InputConfig{
			HTTPTimeoutSeconds: 0,
			DecompressWorkers:  1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag values over the loaded configuration.
// Zero values mean "not set" and leave the config untouched.
func (c *Config) ApplyOverrides(logLevel, logFormat string, reportInterval int64, httpTimeout int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if reportInterval > 0 {
		c.Sampling.ReportIntervalBases = reportInterval
	}
	if httpTimeout > 0 {
		c.Input.HTTPTimeoutSeconds = httpTimeout
	}
}
