package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration, one section per concern.
type Config struct {
	Game    GameConfig    `toml:"game" yaml:"game"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	SSH     SSHConfig     `toml:"ssh" yaml:"ssh"`
}

// GameConfig sizes the play field and populates a session.
type GameConfig struct {
	Width                 int     `toml:"width" yaml:"width"`
	Height                int     `toml:"height" yaml:"height"`
	FPS                   int     `toml:"fps" yaml:"fps"`
	Lives                 int     `toml:"lives" yaml:"lives"`
	Enemies               int     `toml:"enemies" yaml:"enemies"`
	Asteroids             int     `toml:"asteroids" yaml:"asteroids"`
	AsteroidPowerUpChance float64 `toml:"asteroid_powerup_chance" yaml:"asteroid_powerup_chance"` // 0.0-1.0
	EnemyPowerUpChance    float64 `toml:"enemy_powerup_chance" yaml:"enemy_powerup_chance"`       // 0.0-1.0
	Seed                  int64   `toml:"seed" yaml:"seed"`                                       // 0 = seed from the clock
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	Volume     float64 `toml:"volume" yaml:"volume"` // master gain, 0.0-1.0
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
}

// LoggingConfig selects the zap logger level, encoding and destination.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr for servers, discard for the local game
}

// SSHConfig is the listener of the SSH server.
type SSHConfig struct {
	Host    string `toml:"host" yaml:"host"`
	Port    string `toml:"port" yaml:"port"`
	HostKey string `toml:"host_key" yaml:"host_key"`
}

// Default returns a configuration with every value set.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:                 480,
			Height:                600,
			FPS:                   30,
			Lives:                 3,
			Enemies:               2,
			Asteroids:             7,
			AsteroidPowerUpChance: 0.08,
			EnemyPowerUpChance:    0.15,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     1.0,
			SampleRate: 44100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		SSH: SSHConfig{
			Host:    "::",
			Port:    "2222",
			HostKey: "/app/keys/host_key",
		},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := decode(filepath.Ext(path), data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

func decode(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate replaces values the game cannot run with by their defaults.
func (c *Config) Validate() {
	def := Default()
	g := &c.Game
	if g.Width <= 0 {
		g.Width = def.Game.Width
	}
	if g.Height <= 0 {
		g.Height = def.Game.Height
	}
	if g.FPS <= 0 {
		g.FPS = def.Game.FPS
	}
	if g.Lives < 1 {
		g.Lives = def.Game.Lives
	}
	if g.Enemies < 0 {
		g.Enemies = 0
	}
	if g.Asteroids < 0 {
		g.Asteroids = 0
	}
	g.AsteroidPowerUpChance = clampUnit(g.AsteroidPowerUpChance)
	g.EnemyPowerUpChance = clampUnit(g.EnemyPowerUpChance)

	c.Audio.Volume = clampUnit(c.Audio.Volume)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FromEnv loads the file named by SHOOTER_CONFIG when it is set, then lets
// the SSH_* variables override the listener settings.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := GetEnv("SHOOTER_CONFIG", ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.SSH.Host = GetEnv("SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKey = GetEnv("SSH_HOST_KEY", cfg.SSH.HostKey)
	return cfg, nil
}
