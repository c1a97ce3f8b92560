package config

import (
	"fmt"
	"strings"

	"github.com/rcliao/viet-steno/internal/model"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks values cleanenv cannot express as tags. Load calls it.
func (c *Config) Validate() error {
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	if c.Build.Workers <= 0 {
		return fmt.Errorf("build.workers must be > 0 (got %d)", c.Build.Workers)
	}
	if !model.ValidFormats[c.Build.Format] {
		return fmt.Errorf("build.format must be json or yaml (got %q)", c.Build.Format)
	}
	return nil
}
