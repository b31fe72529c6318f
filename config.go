package tilespin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	ExitOnEsc  bool   `yaml:"exit_on_esc"`
	TPS        int    `yaml:"tps"`

	// AssetsDir skips the folder search when set.
	AssetsDir     string `yaml:"assets_dir"`
	AssetsFolder  string `yaml:"assets_folder"`
	SearchParents int    `yaml:"search_parents"`
	SearchKids    int    `yaml:"search_kids"`
	MapFile       string `yaml:"map_file"`

	Background    RGBA    `yaml:"background"`
	SquareColor   RGBA    `yaml:"square_color"`
	SquareSize    float64 `yaml:"square_size"`
	RotationSpeed float64 `yaml:"rotation_speed"`

	HUD bool `yaml:"hud"`
}

func DefaultConfig() Config {
	return Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Fullscreen:    true,
		ExitOnEsc:     true,
		TPS:           DefaultTPS,
		AssetsFolder:  DefaultAssetsFolder,
		SearchParents: DefaultSearchDepth,
		SearchKids:    DefaultSearchDepth,
		MapFile:       DefaultMapFile,
		Background:    Green,
		SquareColor:   Red,
		SquareSize:    DefaultSquareSize,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// LoadConfig reads a yaml file over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.TPS)
	case c.SquareSize <= 0:
		return fmt.Errorf("square_size %v must be positive", c.SquareSize)
	case c.MapFile == "":
		return errors.New("map_file is empty")
	case c.AssetsDir == "" && c.AssetsFolder == "":
		return errors.New("assets_folder is empty")
	case c.SearchParents < 0 || c.SearchKids < 0:
		return errors.New("search depth must not be negative")
	}
	return nil
}

func (c Config) FrameProps() *FrameProps {
	return &FrameProps{
		Background:    c.Background,
		SquareColor:   c.SquareColor,
		SquareSize:    c.SquareSize,
		RotationSpeed: c.RotationSpeed,
	}
}
