// Package config resolves notemark settings from flags, the environment, an
// optional .env file and an optional notemark.yaml config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/speaker"
)

// EnvPrefix prefixes every environment variable read by notemark.
const EnvPrefix = "NOTEMARK"

// Setting keys. Flags use the same names.
const (
	KeyLogLevel          = "log-level"
	KeyLogFile           = "log-file"
	KeyOutput            = "output"
	KeyBlockType         = "block-type"
	KeyWorkers           = "workers"
	KeySpeakerCacheTTL   = "speaker-cache-ttl"
	KeyVocabulary        = "vocabulary"
	KeyVocabularyHeading = "vocabulary-heading"
)

// Output formats.
const (
	OutputHTML     = "html"
	OutputText     = "text"
	OutputMarkdown = "markdown"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel          string
	LogFile           string
	Output            string
	BlockType         model.BlockType
	Workers           int
	SpeakerCacheTTL   time.Duration
	Vocabulary        bool
	VocabularyHeading string
}

// New returns a viper instance with notemark defaults and environment
// binding. NOTEMARK_LOG_LEVEL maps to log-level and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOutput, OutputHTML)
	v.SetDefault(KeyBlockType, string(model.BlockRule))
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeySpeakerCacheTTL, speaker.DefaultExpiration)
	v.SetDefault(KeyVocabulary, false)
	v.SetDefault(KeyVocabularyHeading, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv exports NOTEMARK_* variables from a .env file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	for key, value := range envMap {
		if !strings.HasPrefix(key, EnvPrefix+"_") {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file into v and resolves the settings. An empty
// configFile searches for notemark.yaml in the working directory and in
// the user config directory; not finding one is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("notemark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "notemark"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:          v.GetString(KeyLogLevel),
		LogFile:           v.GetString(KeyLogFile),
		Output:            strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		BlockType:         model.ParseBlockType(strings.TrimSpace(v.GetString(KeyBlockType))),
		Workers:           v.GetInt(KeyWorkers),
		SpeakerCacheTTL:   v.GetDuration(KeySpeakerCacheTTL),
		Vocabulary:        v.GetBool(KeyVocabulary),
		VocabularyHeading: v.GetString(KeyVocabularyHeading),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputHTML, OutputText, OutputMarkdown:
	default:
		return fmt.Errorf("invalid output %q: want html, text or markdown", c.Output)
	}
	if !c.BlockType.Known() {
		return fmt.Errorf("invalid block type %q", c.BlockType)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.SpeakerCacheTTL < 0 {
		return fmt.Errorf("speaker cache ttl must not be negative")
	}
	return nil
}
