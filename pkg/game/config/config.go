// Package config loads and persists player preferences as YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Backend names
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
)

// Config is the on-disk preference file.
type Config struct {
	Backend     string            `yaml:"backend"`
	WindowScale int               `yaml:"window_scale"`
	RadarRange  int               `yaml:"radar_range"`
	Sound       bool              `yaml:"sound"`
	Volume      float64           `yaml:"volume"`
	HighScore   int               `yaml:"high_score"`
	Bindings    map[string]string `yaml:"bindings,omitempty"` // action name -> key code

	path string
	mu   sync.Mutex
}

// Defaults returns the built-in preferences.
func Defaults() *Config {
	return &Config{
		Backend:     BackendEbiten,
		WindowScale: 3,
		RadarRange:  4,
		Sound:       true,
		Volume:      -1,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/phantomslayer/config.yaml, falling back
// to the user's home directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "phantomslayer.yaml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "phantomslayer", "config.yaml")
}

var (
	currentMu sync.Mutex
	current   *Config
)

// Current returns the loaded config, or defaults if Load was never called.
func Current() *Config {
	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = Defaults()
		current.path = DefaultPath()
	}
	return current
}

// Load reads the file at path (DefaultPath when empty) and makes it
// Current. A missing file is not an error: defaults are used and the file
// is created on the first save.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Defaults()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		setCurrent(cfg)
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			cfg = Defaults()
			cfg.path = path
			setCurrent(cfg)
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.normalise()
	setCurrent(cfg)
	return cfg, nil
}

func setCurrent(cfg *Config) {
	currentMu.Lock()
	current = cfg
	currentMu.Unlock()
}

func (c *Config) normalise() {
	if c.Backend != BackendTUI {
		c.Backend = BackendEbiten
	}
	if c.WindowScale < 1 {
		c.WindowScale = 1
	}
	if c.WindowScale > 8 {
		c.WindowScale = 8
	}
	if c.RadarRange < 1 || c.RadarRange > 6 {
		c.RadarRange = 4
	}
	if c.Volume > 0 {
		c.Volume = 0
	}
	if c.HighScore < 0 {
		c.HighScore = 0
	}
}

// Path returns where the config is saved.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to its path.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

func (c *Config) saveLocked() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}

// SetHighScore records a new best score and saves. Lower scores are ignored.
func (c *Config) SetHighScore(score int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if score <= c.HighScore {
		return nil
	}
	c.HighScore = score
	return c.saveLocked()
}

// SetRadarRange stores the default detector range and saves.
func (c *Config) SetRadarRange(r int) error {
	if r < 1 || r > 6 {
		return fmt.Errorf("radar range %d out of range 1-6", r)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RadarRange = r
	return c.saveLocked()
}

// SetWindowScale stores the window scale factor and saves.
func (c *Config) SetWindowScale(scale int) error {
	if scale < 1 || scale > 8 {
		return fmt.Errorf("window scale %d out of range 1-8", scale)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WindowScale = scale
	return c.saveLocked()
}
