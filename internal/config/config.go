// Package config loads the library's tunables. A C host has no way to pass structured options through the
// exported functions, so everything is read from an optional YAML file and the process environment.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath          = "CONVERT_CONFIG"
	EnvLogLevel            = "CONVERT_LOG_LEVEL"
	EnvLogFormat           = "CONVERT_LOG_FORMAT"
	EnvCompressionLevel    = "CONVERT_COMPRESSION_LEVEL"
	EnvParallelThreshold   = "CONVERT_PARALLEL_THRESHOLD"
	EnvMaxDecompressedSize = "CONVERT_MAX_DECOMPRESSED_SIZE"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every setting the library reads at load time
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// CompressionLevel is a gzip level between -2 (huffman only) and 9. -1 selects the default level.
	CompressionLevel int `yaml:"compression_level"`
	// ParallelThreshold is the input size, in bytes, at which compression switches to the parallel
	// gzip writer. 0 disables parallel compression.
	ParallelThreshold int `yaml:"parallel_threshold"`
	// MaxDecompressedSize caps the output of a single decompression. 0 means no limit.
	MaxDecompressedSize int64 `yaml:"max_decompressed_size"`
}

func Default() Config {
	return Config{
		LogLevel:          "warn",
		LogFormat:         LogFormatText,
		CompressionLevel:  -1,
		ParallelThreshold: 1 << 20,
	}
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("unknown log level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Newf("unknown log format %q", c.LogFormat)
	}

	if c.CompressionLevel < -2 || c.CompressionLevel > 9 {
		return errors.Newf("compression level %d is out of range [-2, 9]", c.CompressionLevel)
	}

	if c.ParallelThreshold < 0 {
		return errors.Newf("parallel threshold %d must not be negative", c.ParallelThreshold)
	}

	if c.MaxDecompressedSize < 0 {
		return errors.Newf("max decompressed size %d must not be negative", c.MaxDecompressedSize)
	}

	return nil
}

// ReadYAML overlays the settings in confBytes onto conf. Unknown keys are rejected.
func ReadYAML(conf Config, confBytes []byte) (Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(confBytes))
	decoder.KnownFields(true)

	err := decoder.Decode(&conf)
	if err != nil && !errors.Is(err, io.EOF) {
		return conf, errors.Wrap(err, "failed to parse config")
	}

	return conf, nil
}

// ApplyEnv overlays any CONVERT_* variables found through lookup onto conf
func ApplyEnv(conf Config, lookup func(string) (string, bool)) (Config, error) {
	if value, ok := lookup(EnvLogLevel); ok {
		conf.LogLevel = value
	}

	if value, ok := lookup(EnvLogFormat); ok {
		conf.LogFormat = value
	}

	if value, ok := lookup(EnvCompressionLevel); ok {
		level, err := strconv.Atoi(value)
		if err != nil {
			return conf, errors.Wrapf(err, "invalid %s", EnvCompressionLevel)
		}
		conf.CompressionLevel = level
	}

	if value, ok := lookup(EnvParallelThreshold); ok {
		threshold, err := strconv.Atoi(value)
		if err != nil {
			return conf, errors.Wrapf(err, "invalid %s", EnvParallelThreshold)
		}
		conf.ParallelThreshold = threshold
	}

	if value, ok := lookup(EnvMaxDecompressedSize); ok {
		limit, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return conf, errors.Wrapf(err, "invalid %s", EnvMaxDecompressedSize)
		}
		conf.MaxDecompressedSize = limit
	}

	return conf, nil
}

// Load builds the effective configuration: defaults, then the file named by CONVERT_CONFIG, then
// individual environment overrides. The result is validated before it is returned.
func Load() (Config, error) {
	conf := Default()

	if path, ok := os.LookupEnv(EnvConfigPath); ok && path != "" {
		confBytes, err := os.ReadFile(path)
		if err != nil {
			return Default(), errors.Wrapf(err, "failed to read config file %s", path)
		}

		conf, err = ReadYAML(conf, confBytes)
		if err != nil {
			return Default(), err
		}
	}

	conf, err := ApplyEnv(conf, os.LookupEnv)
	if err != nil {
		return Default(), err
	}

	err = conf.Validate()
	if err != nil {
		return Default(), err
	}

	return conf, nil
}
