// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/texclean/internal/logging"
	"github.com/pdiddy/texclean/pkg/types"
)

func setDefaults() {
	viper.SetDefault("conversion.extension", ".md")
	viper.SetDefault("catalog.dir", ".texclean")
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "texclean/"+version)
	viper.SetDefault("fetch.max_retries", 3)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

// loadConfig reads the merged flag, environment and file settings.
func loadConfig() types.Config {
	return types.Config{
		Conversion: types.ConversionConfig{
			OutputDir:   viper.GetString("conversion.output_dir"),
			Extension:   viper.GetString("conversion.extension"),
			Frontmatter: viper.GetBool("conversion.frontmatter"),
			Force:       viper.GetBool("conversion.force"),
		},
		Catalog: types.CatalogConfig{
			Dir:        viper.GetString("catalog.dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			MaxRetries: viper.GetInt("fetch.max_retries"),
		},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}

// newLogger builds the diagnostic logger, which writes to stderr so that
// converted text on stdout stays clean.
func newLogger(cfg types.Config) (*slog.Logger, error) {
	return logging.New(logging.FromConfig(cfg.Log, os.Stderr))
}
