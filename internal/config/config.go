// Package config resolves artifact locations and process settings from
// defaults, an optional YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"winequality/pkg/artifact"
)

// Environment variables read by Load.
const (
	EnvArtifactDir = "WINEQ_ARTIFACT_DIR"
	EnvImputer     = "WINEQ_IMPUTER"
	EnvScaler      = "WINEQ_SCALER"
	EnvModel       = "WINEQ_MODEL"
	EnvLogLevel    = "WINEQ_LOG_LEVEL"
	EnvLogFormat   = "WINEQ_LOG_FORMAT"
	EnvAddr        = "WINEQ_ADDR"
)

type Config struct {
	ArtifactDir string `yaml:"artifact_dir"`
	Imputer     string `yaml:"imputer"`
	Scaler      string `yaml:"scaler"`
	Model       string `yaml:"model"`
	Log         Log    `yaml:"log"`
	Server      Server `yaml:"server"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Default mirrors the layout the artifacts are shipped in.
func Default() Config {
	return Config{
		ArtifactDir: "modelos",
		Imputer:     "wine_quality_imputer.json",
		Scaler:      "wine_quality_scaler.json",
		Model:       "wine_quality_model.json",
		Log:         Log{Level: "info", Format: "text"},
		Server:      Server{Addr: ":8080", ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
	}
}

// Load applies, in increasing precedence: defaults, the YAML file at path (if
// path is non-empty), .env in the working directory, and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	overrideFromEnv(&cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	for env, dst := range map[string]*string{
		EnvArtifactDir: &cfg.ArtifactDir,
		EnvImputer:     &cfg.Imputer,
		EnvScaler:      &cfg.Scaler,
		EnvModel:       &cfg.Model,
		EnvLogLevel:    &cfg.Log.Level,
		EnvLogFormat:   &cfg.Log.Format,
		EnvAddr:        &cfg.Server.Addr,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}
}

// ArtifactPaths resolves relative artifact names against ArtifactDir.
func (c Config) ArtifactPaths() artifact.Paths {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || c.ArtifactDir == "" {
			return p
		}
		return filepath.Join(c.ArtifactDir, p)
	}
	return artifact.Paths{
		Imputer: resolve(c.Imputer),
		Scaler:  resolve(c.Scaler),
		Model:   resolve(c.Model),
	}
}
