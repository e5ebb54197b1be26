package tmb

import (
	"github.com/carbocation/pfx"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "TMB"

// Config carries defaults that may be supplied through the environment.
// Command-line flags take precedence over these values.
type Config struct {
	// Ledger is the SQLite database that successful passes are appended to.
	// Empty disables the ledger.
	Ledger string `envconfig:"LEDGER"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, pfx.Err(err)
	}

	return cfg, nil
}
