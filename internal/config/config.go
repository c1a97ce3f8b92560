// Package config loads viet-steno settings from YAML and the environment.
package config

// Config is the root configuration.
type Config struct {
	DBPath string      `yaml:"db_path" env:"VIET_STENO_DB"`
	Log    LogConfig   `yaml:"log"`
	Build  BuildConfig `yaml:"build"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// BuildConfig tunes dictionary builds.
type BuildConfig struct {
	Workers int    `yaml:"workers" env:"VIET_STENO_WORKERS" env-default:"4"`
	Format  string `yaml:"format"  env:"VIET_STENO_FORMAT"  env-default:"json"`
}
