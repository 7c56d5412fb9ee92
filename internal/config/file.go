package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	apperrors "github.com/agbru/scoreboard/internal/errors"
)

// FileConfig mirrors the subset of AppConfig that may be set from a YAML
// file. Pointer fields distinguish "absent" from zero values.
//
//	addr: ":9090"
//	log_level: debug
//	theme: light
//	no_color: false
//	allowed_origins: ["http://localhost:3000"]
//	rate_limit: 20
//	rate_burst: 40
//	shutdown_timeout: 5s
type FileConfig struct {
	Addr            *string   `yaml:"addr"`
	LogLevel        *string   `yaml:"log_level"`
	Theme           *string   `yaml:"theme"`
	NoColor         *bool     `yaml:"no_color"`
	AllowedOrigins  []string  `yaml:"allowed_origins"`
	RateLimit       *float64  `yaml:"rate_limit"`
	RateBurst       *int      `yaml:"rate_burst"`
	ShutdownTimeout *Duration `yaml:"shutdown_timeout"`
}

// Duration is a time.Duration that unmarshals from strings such as "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// LoadFile reads and decodes a YAML configuration file. Unknown keys are
// rejected so typos surface as configuration errors.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("reading config file: %v", err)
	}
	return decodeFile(data)
}

func decodeFile(data []byte) (FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, apperrors.NewConfigError("parsing config file: %v", err)
	}
	return fc, nil
}

// apply copies file values into cfg for every option whose flag was not
// given on the command line.
func (fc FileConfig) apply(cfg *AppConfig, fs *flag.FlagSet) {
	set := func(flagName string, present bool, assign func()) {
		if present && !isFlagSet(fs, flagName) {
			assign()
		}
	}
	set("addr", fc.Addr != nil, func() { cfg.Addr = *fc.Addr })
	set("log-level", fc.LogLevel != nil, func() { cfg.LogLevel = *fc.LogLevel })
	set("theme", fc.Theme != nil, func() { cfg.Theme = *fc.Theme })
	set("no-color", fc.NoColor != nil, func() { cfg.NoColor = *fc.NoColor })
	set("origins", len(fc.AllowedOrigins) > 0, func() { cfg.AllowedOrigins = fc.AllowedOrigins })
	set("rate-limit", fc.RateLimit != nil, func() { cfg.RateLimit = *fc.RateLimit })
	set("rate-burst", fc.RateBurst != nil, func() { cfg.RateBurst = *fc.RateBurst })
	set("shutdown-timeout", fc.ShutdownTimeout != nil, func() {
		cfg.ShutdownTimeout = time.Duration(*fc.ShutdownTimeout)
	})
}
