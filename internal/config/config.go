package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/irctl/internal/ir"
	"github.com/danmuck/irctl/internal/ir/xmi"
)

// Config is the resolved irctl runtime configuration.
type Config struct {
	Codec  CodecConfig
	Match  MatchConfig
	Server ServerConfig
	Log    LogConfig
}

type CodecConfig struct {
	Bits   uint16
	Strict bool
	Repeat uint16
	Offset int
}

type MatchConfig struct {
	Tolerance  uint8
	MarkExcess uint16
	Timeout    time.Duration
}

type ServerConfig struct {
	ID          string
	Addr        string
	CorsOrigins []string
}

type LogConfig struct {
	Level string
}

// irctl config.toml key mapping.
type fileConfig struct {
	Codec struct {
		Bits   uint16 `toml:"bits"`
		Strict bool   `toml:"strict"`
		Repeat uint16 `toml:"repeat"`
		Offset int    `toml:"offset"`
	} `toml:"codec"`
	Match struct {
		Tolerance  uint8  `toml:"tolerance"`
		MarkExcess uint16 `toml:"mark_excess"`
		TimeoutMS  int64  `toml:"timeout_ms"`
	} `toml:"match"`
	Server struct {
		ID          string   `toml:"id"`
		Addr        string   `toml:"addr"`
		CorsOrigins []string `toml:"cors_origins"`
	} `toml:"server"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func DefaultConfig() Config {
	m := ir.DefaultMatcher()
	return Config{
		Codec: CodecConfig{
			Bits:   xmi.Bits,
			Strict: true,
			Repeat: xmi.MinRepeat,
		},
		Match: MatchConfig{
			Tolerance:  m.Tolerance,
			MarkExcess: m.MarkExcess,
			Timeout:    m.Timeout,
		},
		Server: ServerConfig{
			ID:   "irctl",
			Addr: ":9200",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load overlays the keys present in the TOML file at path on DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("codec", "bits") {
		cfg.Codec.Bits = raw.Codec.Bits
	}
	if meta.IsDefined("codec", "strict") {
		cfg.Codec.Strict = raw.Codec.Strict
	}
	if meta.IsDefined("codec", "repeat") {
		cfg.Codec.Repeat = raw.Codec.Repeat
	}
	if meta.IsDefined("codec", "offset") {
		cfg.Codec.Offset = raw.Codec.Offset
	}
	if meta.IsDefined("match", "tolerance") {
		cfg.Match.Tolerance = raw.Match.Tolerance
	}
	if meta.IsDefined("match", "mark_excess") {
		cfg.Match.MarkExcess = raw.Match.MarkExcess
	}
	if meta.IsDefined("match", "timeout_ms") {
		cfg.Match.Timeout = time.Duration(raw.Match.TimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("server", "id") {
		cfg.Server.ID = strings.TrimSpace(raw.Server.ID)
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = raw.Server.CorsOrigins
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Codec.Bits == 0 || cfg.Codec.Bits > xmi.MaxBits || cfg.Codec.Bits%2 != 0 {
		return fmt.Errorf("codec.bits must be even and within 2..%d, got %d", xmi.MaxBits, cfg.Codec.Bits)
	}
	if cfg.Codec.Offset < 0 {
		return fmt.Errorf("codec.offset must not be negative")
	}
	if cfg.Match.Tolerance > 100 {
		return fmt.Errorf("match.tolerance must be a percentage, got %d", cfg.Match.Tolerance)
	}
	if cfg.Match.Timeout < 0 {
		return fmt.Errorf("match.timeout_ms must not be negative")
	}
	if strings.TrimSpace(cfg.Server.ID) == "" {
		return fmt.Errorf("server.id is required")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Matcher converts the match section to a decoder matcher.
func (c Config) Matcher() ir.Matcher {
	return ir.Matcher{
		Tolerance:  c.Match.Tolerance,
		MarkExcess: c.Match.MarkExcess,
		Timeout:    c.Match.Timeout,
	}
}
