package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Extinction policies
const (
	OnExtinctReset  = "reset"
	OnExtinctHalt   = "halt"
	OnExtinctReport = "report"
)

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// CellPosition addresses a cell toggled alive before the run starts
type CellPosition struct {
	Row int `json:"row" yaml:"row" toml:"row"`
	Col int `json:"col" yaml:"col" toml:"col"`
}

// PatternPlacement anchors a named built-in pattern at a cell
type PatternPlacement struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Row  int    `json:"row" yaml:"row" toml:"row"`
	Col  int    `json:"col" yaml:"col" toml:"col"`
}

// Config holds the configuration for the game
type Config struct {
	ScreenWidth         int                `json:"screen_width" yaml:"screen_width" toml:"screen_width"`
	ScreenHeight        int                `json:"screen_height" yaml:"screen_height" toml:"screen_height"`
	CellSize            int                `json:"cell_size" yaml:"cell_size" toml:"cell_size"`
	FrameRate           Duration           `json:"frame_rate" yaml:"frame_rate" toml:"frame_rate"`
	AliveProbability    float64            `json:"alive_probability" yaml:"alive_probability" toml:"alive_probability"`
	StartEmpty          bool               `json:"start_empty" yaml:"start_empty" toml:"start_empty"`
	InitialCells        []CellPosition     `json:"initial_cells" yaml:"initial_cells" toml:"initial_cells"`
	Patterns            []PatternPlacement `json:"patterns" yaml:"patterns" toml:"patterns"`
	OnExtinct           string             `json:"on_extinct" yaml:"on_extinct" toml:"on_extinct"`
	StagnationThreshold int                `json:"stagnation_threshold" yaml:"stagnation_threshold" toml:"stagnation_threshold"`
	MaxGenerations      int                `json:"max_generations" yaml:"max_generations" toml:"max_generations"`
	Seed                int64              `json:"seed" yaml:"seed" toml:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         900,
		ScreenHeight:        450,
		CellSize:            15, // 30 rows x 60 cols
		FrameRate:           Duration{150 * time.Millisecond},
		AliveProbability:    0.5,
		OnExtinct:           OnExtinctReset,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
	}
}

// GridDimensions derives the grid size from the screen size and the cell size
func (c Config) GridDimensions() (rows, cols int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	return c.ScreenHeight / c.CellSize, c.ScreenWidth / c.CellSize
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %d", c.CellSize)
	case c.CellSize > c.ScreenWidth || c.CellSize > c.ScreenHeight:
		return errors.Wrapf(ErrInvalidConfig, "cell size %d does not fit a %dx%d screen", c.CellSize, c.ScreenWidth, c.ScreenHeight)
	case c.FrameRate.Duration <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate must be positive, got %v", c.FrameRate)
	case c.AliveProbability < 0 || c.AliveProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "alive probability must lie in [0, 1], got %v", c.AliveProbability)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations must not be negative, got %d", c.MaxGenerations)
	}
	switch c.OnExtinct {
	case OnExtinctReset, OnExtinctHalt, OnExtinctReport:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown extinction policy %q", c.OnExtinct)
	}
	return nil
}

// LoadConfig loads configuration from a JSON, YAML or TOML file chosen by extension.
// Fields absent from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".toml":
		err = toml.Unmarshal(data, &config)
	default:
		return config, errors.Wrapf(ErrUnsupportedFormat, "[LoadConfig] %q", ext)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
