package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ukaji3/alluvial-go/pkg/alluvial"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/parser"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/render"
)

// Config holds the runtime configuration of a run.
// Values are populated from .alluvial.yaml, ALLUVIAL_* env vars, and CLI flags.
type Config struct {
	Output         string        `mapstructure:"output"`
	Format         string        `mapstructure:"format"`
	Pretty         bool          `mapstructure:"pretty"`
	Sheet          string        `mapstructure:"sheet"`
	Range          string        `mapstructure:"range"`
	CategoryColumn string        `mapstructure:"category_column"`
	YearColumn     string        `mapstructure:"year_column"`
	Boundaries     []int         `mapstructure:"boundaries"`
	Opacity        float64       `mapstructure:"opacity"`
	Hue            float64       `mapstructure:"hue"`
	Verbose        bool          `mapstructure:"verbose"`
	Debounce       time.Duration `mapstructure:"debounce"`
	// Style is read from the config file only.
	Style render.Style `mapstructure:"style"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	defaults := alluvial.DefaultOptions()
	viper.SetDefault("output", "")
	viper.SetDefault("format", "")
	viper.SetDefault("pretty", false)
	viper.SetDefault("sheet", "")
	viper.SetDefault("range", "")
	viper.SetDefault("category_column", parser.DefaultCategoryColumn)
	viper.SetDefault("year_column", parser.DefaultYearColumn)
	viper.SetDefault("boundaries", defaults.Boundaries)
	viper.SetDefault("opacity", defaults.Opacity)
	viper.SetDefault("hue", defaults.Colors.Hue)
	viper.SetDefault("verbose", false)
	viper.SetDefault("debounce", "250ms")

	cfg := Config{Style: render.DefaultStyle()}
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".alluvial")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ALLUVIAL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// bindFlags binds command flags to their config keys.
func bindFlags(cmd *cobra.Command) error {
	keys := map[string]string{
		"output":          "output",
		"format":          "format",
		"pretty":          "pretty",
		"sheet":           "sheet",
		"range":           "range",
		"category_column": "category-column",
		"year_column":     "year-column",
		"boundaries":      "boundaries",
		"verbose":         "verbose",
	}
	for key, name := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the configuration to generation options.
func (c Config) Options(logger *zap.Logger) (alluvial.Options, error) {
	opts := alluvial.DefaultOptions()
	if len(c.Boundaries) > 0 {
		opts.Boundaries = c.Boundaries
	}
	opts.Opacity = c.Opacity
	opts.Colors.Hue = c.Hue
	opts.Logger = logger

	opts.Read.Columns = parser.Columns{Category: c.CategoryColumn, Year: c.YearColumn}
	opts.Read.Sheet = c.Sheet
	if c.Range != "" {
		sheet, area, err := parser.ParseReference(c.Range)
		if err != nil {
			return alluvial.Options{}, err
		}
		if opts.Read.Sheet == "" {
			opts.Read.Sheet = sheet
		}
		opts.Read.Range = area
	}
	return opts, nil
}
