package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Default dataset locations. Both documents are static exports, so the URLs
// live in config only to allow mirrors.
const (
	defaultHSK1URL   = "https://ppl-ai-code-interpreter-files.s3.amazonaws.com/web/direct-files/b9363a5102e44fb24cbd45a6f3c0b12b/32e4d036-3681-4d02-9b8a-9bbaa5b50a47/a6113636.json"
	defaultKangxiURL = "https://ppl-ai-code-interpreter-files.s3.amazonaws.com/web/direct-files/b9363a5102e44fb24cbd45a6f3c0b12b/32e4d036-3681-4d02-9b8a-9bbaa5b50a47/82d4a6ed.json"
)

type Config struct {
	Datasets DatasetsConfig `mapstructure:"datasets"`
	Decks    DecksConfig    `mapstructure:"decks"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
}

type DatasetsConfig struct {
	HSK1URL       string        `mapstructure:"hsk1_url"`
	KangxiURL     string        `mapstructure:"kangxi_url"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	RetryAttempts uint          `mapstructure:"retry_attempts"`
	Offline       bool          `mapstructure:"offline"`
}

type DecksConfig struct {
	File string `mapstructure:"file"`
}

type QuizConfig struct {
	OptionCount  int           `mapstructure:"option_count"`
	AdvanceDelay time.Duration `mapstructure:"advance_delay"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hanzideck")
	}

	v.SetDefault("datasets.hsk1_url", defaultHSK1URL)
	v.SetDefault("datasets.kangxi_url", defaultKangxiURL)
	v.SetDefault("datasets.fetch_timeout", 10*time.Second)
	v.SetDefault("datasets.retry_attempts", 2)
	v.SetDefault("datasets.offline", false)
	v.SetDefault("decks.file", "")
	v.SetDefault("quiz.option_count", 4)
	v.SetDefault("quiz.advance_delay", 1500*time.Millisecond)

	if err := v.BindEnv("datasets.offline", "HANZIDECK_OFFLINE"); err != nil {
		return nil, fmt.Errorf("failed to bind HANZIDECK_OFFLINE environment variable: %w", err)
	}
	if err := v.BindEnv("decks.file", "HANZIDECK_DECKS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind HANZIDECK_DECKS_FILE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
