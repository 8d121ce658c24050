// Package config holds the server settings: defaults, an optional TOML file
// and CHESS_* environment overrides, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	ListenAddr   string   `toml:"listen_addr"`
	AllowOrigins []string `toml:"allow_origins"`
	LogLevel     string   `toml:"log_level"`
	CastlingRule string   `toml:"castling_rule"`
	MaxSessions  int      `toml:"max_sessions"`
}

func Default() Config {
	return Config{
		ListenAddr:   ":3000",
		AllowOrigins: []string{"http://localhost:5173"},
		LogLevel:     "info",
		CastlingRule: model.CastlingTracked.String(),
		MaxSessions:  1000,
	}
}

// Load builds the configuration. path may be empty, in which case only the
// defaults and the environment are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CHESS_LISTEN_ADDR"); ok {
		c.ListenAddr = v
	}
	if v, ok := lookup("CHESS_ALLOW_ORIGINS"); ok {
		c.AllowOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowOrigins = append(c.AllowOrigins, origin)
			}
		}
	}
	if v, ok := lookup("CHESS_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("CHESS_CASTLING_RULE"); ok {
		c.CastlingRule = v
	}
	if v, ok := lookup("CHESS_MAX_SESSIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CHESS_MAX_SESSIONS=%q", ErrInvalidConfig, v)
		}
		c.MaxSessions = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr is empty", ErrInvalidConfig)
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("%w: max_sessions must be positive, got %d", ErrInvalidConfig, c.MaxSessions)
	}
	if _, err := model.ParseCastlingRule(c.CastlingRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Rule returns the configured castling rule. Validate has already vetted it.
func (c Config) Rule() model.CastlingRule {
	rule, _ := model.ParseCastlingRule(c.CastlingRule)
	return rule
}

func (c Config) Origins() string {
	return strings.Join(c.AllowOrigins, ", ")
}

func ParseLogLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "", "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
}
