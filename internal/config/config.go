// Package config collects the runtime settings of the detective game from the environment.
package config

import (
	"detective/internal/envstruct"
	"detective/internal/errors"
)

type Config struct {
	// Debug enables the debug log file.
	Debug bool `env:"DEBUG" envDefault:"false"`
	// Journal is the sqlite file finished sessions are appended to. Empty disables the journal.
	Journal string `env:"DETECTIVE_JOURNAL" envDefault:""`
	// AutoCollect collects every clue found without asking.
	AutoCollect bool `env:"DETECTIVE_AUTO_COLLECT" envDefault:"false"`
	// Locale and LocaleDir select a gettext catalog. Without a catalog the built-in Portuguese text is used.
	Locale    string `env:"DETECTIVE_LOCALE" envDefault:"pt_BR"`
	LocaleDir string `env:"DETECTIVE_LOCALE_DIR" envDefault:""`

	TracesEnabled bool   `env:"OTEL_TRACES_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"http://localhost:4318"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads the configuration with lookupEnv, usually [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return Config{}, errors.Wrap(err, "populate config")
	}
	return cfg, nil
}
