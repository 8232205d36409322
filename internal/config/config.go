// Package config defines service configuration and its loading.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers a YAML file and BEAST_* environment variables over them.
// - Loading and validation errors wrap this package's sentinel errors.
package config

import (
	"time"

	"github.com/okian/beastscore/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":4000".
	Addr string `koanf:"addr"`

	// Network is written into every profile, e.g. "base-mainnet".
	Network string `koanf:"network"`

	// ChainID selects the chain on Etherscan v2.
	ChainID string `koanf:"chain_id"`

	// HTTPTimeoutMS bounds each provider HTTP request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// TemplatePath is the baseline wallet profile document.
	TemplatePath string `koanf:"template_path"`

	// MetadataTemplatePath is the baseline beast token metadata document.
	MetadataTemplatePath string `koanf:"metadata_template_path"`

	EtherscanAPIKey   string `koanf:"etherscan_api_key"`
	EtherscanBaseURL  string `koanf:"etherscan_base_url"`
	BlockscoutBaseURL string `koanf:"blockscout_base_url"`
	MoralisAPIKey     string `koanf:"moralis_api_key"`
	MoralisBaseURL    string `koanf:"moralis_base_url"`
	MoralisChain      string `koanf:"moralis_chain"`

	// BatchWorkers sets the number of concurrent scorers in beast-batch.
	BatchWorkers int `koanf:"batch_workers"`

	// Overrides maps addresses to operator-supplied builder/social scores.
	Overrides map[string]model.ManualOverride `koanf:"overrides"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":4000",
		Network:              "base-mainnet",
		ChainID:              "8453",
		HTTPTimeoutMS:        15_000,
		TemplatePath:         "assets/templates/wallet_profile_example.json",
		MetadataTemplatePath: "assets/templates/beast_0_metadata.json",
		EtherscanBaseURL:     "https://api.etherscan.io/v2/api",
		BlockscoutBaseURL:    "https://base.blockscout.com/api",
		MoralisBaseURL:       "https://deep-index.moralis.io/api/v2.2",
		MoralisChain:         "base",
		BatchWorkers:         4,
		Overrides:            map[string]model.ManualOverride{},
	}
}

// HTTPTimeout returns HTTPTimeoutMS as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}
