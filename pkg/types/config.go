package types

import "time"

// HTTPConfig holds shared HTTP settings used when sources are fetched by URL.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "texclean/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for loading LaTeX sources over HTTP.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retries on HTTP 429 and 503 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	// OutputDir is the directory for converted files. Empty writes next to the source.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Extension is the output file extension including the dot (default ".md").
	Extension string `json:"extension" yaml:"extension"`

	// Frontmatter prepends a YAML block with the extracted metadata.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// Force overwrites existing output instead of skipping it.
	Force bool `json:"force" yaml:"force"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Dir is the directory holding catalog.db and exports.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig selects the diagnostic logger's level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings read from texclean.yaml.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
