package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const imagesDir = "images"

// Settings 运行配置
type Settings struct {
	MaxWidth  uint `envconfig:"MAX_WIDTH" default:"1920"`
	Quality   int  `envconfig:"WEBP_QUALITY" default:"80"`
	InDevelop bool `envconfig:"IN_DEVELOP"`
}

// Load reads settings from the environment and validates them.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	if s.MaxWidth == 0 {
		return nil, fmt.Errorf("MAX_WIDTH must be positive")
	}
	if s.Quality < 0 || s.Quality > 100 {
		return nil, fmt.Errorf("WEBP_QUALITY %d out of range 0-100", s.Quality)
	}
	return &s, nil
}

// Root returns the image tree under the working directory.
func (s *Settings) Root() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, imagesDir), nil
}
