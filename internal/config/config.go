package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dNmmer/SortFiles/internal/domain"
)

const envPrefix = "SORTFILES_"

type Config struct {
	SourceDir  string   `yaml:"source"`
	TargetDir  string   `yaml:"target"`
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
	Verbose    bool     `yaml:"verbose"`
	LogFile    string   `yaml:"log_file"`
	NoColor    bool     `yaml:"no_color"`
	LockDir    string   `yaml:"lock_dir"`
}

// Op names the operation a configuration is validated for.
type Op string

const (
	OpScan Op = "scan"
	OpCopy Op = "copy"
	OpUI   Op = "ui"
)

var (
	ErrSourceRequired    = errors.New("укажите существующую исходную папку")
	ErrTargetRequired    = errors.New("укажите папку назначения")
	ErrSelectionRequired = errors.New("выберите хотя бы один тип файла")
)

// LoadDotEnv reads a .env file into the environment without overriding
// variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFile overlays the YAML file at path on cfg.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays every SORTFILES_* variable that is set.
func ApplyEnv(cfg *Config) error {
	if v := envOrEmpty(envPrefix + "SOURCE_DIR"); v != "" {
		cfg.SourceDir = v
	}
	if v := envOrEmpty(envPrefix + "TARGET_DIR"); v != "" {
		cfg.TargetDir = v
	}
	if v := envOrEmpty(envPrefix + "EXTENSIONS"); v != "" {
		cfg.Extensions = strings.Split(v, ",")
	}
	if v := envOrEmpty(envPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sWORKERS: %w", envPrefix, err)
		}
		cfg.Workers = n
	}
	if envTruthy(envPrefix + "VERBOSE") {
		cfg.Verbose = true
	}
	if v := envOrEmpty(envPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if envTruthy("NO_COLOR") || envTruthy(envPrefix+"NO_COLOR") {
		cfg.NoColor = true
	}
	if v := envOrEmpty(envPrefix + "LOCK_DIR"); v != "" {
		cfg.LockDir = v
	}
	return nil
}

// Normalize trims paths and turns extensions into lower-case ".ext" form,
// dropping blanks and duplicates.
func (c *Config) Normalize() {
	c.SourceDir = strings.TrimSpace(c.SourceDir)
	c.TargetDir = strings.TrimSpace(c.TargetDir)
	c.Extensions = domain.NewSelection(c.Extensions...).List()
	if c.Workers < 0 {
		c.Workers = 0
	}
}

func (c Config) Selection() domain.Selection {
	return domain.NewSelection(c.Extensions...)
}

// Validate rejects input that must never reach the engine.
func (c Config) Validate(op Op) error {
	if c.SourceDir == "" {
		return ErrSourceRequired
	}
	info, err := os.Stat(c.SourceDir)
	if err != nil || !info.IsDir() {
		return ErrSourceRequired
	}
	if op == OpCopy {
		if c.TargetDir == "" {
			return ErrTargetRequired
		}
		if len(c.Selection()) == 0 {
			return ErrSelectionRequired
		}
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
