package hygiene

import "github.com/shiptrack/inputguard/pkg/config"

// Config holds Guard settings read from the environment.
type Config struct {
	IDLength      int  `env:"INPUTGUARD_ID_LENGTH" envDefault:"8"`
	StrictMasking bool `env:"INPUTGUARD_STRICT_MASKING" envDefault:"true"`
	LogRejections bool `env:"INPUTGUARD_LOG_REJECTIONS" envDefault:"true"`
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Guard from cfg. Options in opts are applied after
// the configured ones.
func NewFromConfig(cfg Config, opts ...Option) *Guard {
	base := []Option{
		WithIDLength(cfg.IDLength),
		WithStrictMasking(cfg.StrictMasking),
		WithRejectionLogging(cfg.LogRejections),
	}
	return New(append(base, opts...)...)
}
