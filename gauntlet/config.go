package gauntlet

import (
	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

// Config controls where and how tests are written.
type Config struct {
	// Out is the directory that receives the generated files.
	Out null.String `json:"out" envconfig:"GAUNTLET_OUT"`
	// Ext is the extension given to generated files, without the leading dot.
	Ext null.String `json:"ext" envconfig:"GAUNTLET_EXT"`
	// Split writes each family into a subdirectory named after its theme.
	Split null.Bool `json:"split" envconfig:"GAUNTLET_SPLIT"`
}

// NewConfig returns the default configuration: files named <test>.WAT in the working directory.
func NewConfig() Config {
	return Config{
		Out:   null.NewString(".", false),
		Ext:   null.NewString("WAT", false),
		Split: null.NewBool(false, false),
	}
}

// Apply overlays the valid fields of cfg onto c.
func (c Config) Apply(cfg Config) Config {
	if cfg.Out.Valid {
		c.Out = cfg.Out
	}
	if cfg.Ext.Valid {
		c.Ext = cfg.Ext
	}
	if cfg.Split.Valid {
		c.Split = cfg.Split
	}
	return c
}

// GetConsolidatedConfig combines the defaults, the environment and any explicitly-set CLI values, in increasing order
// of precedence.
func GetConsolidatedConfig(env map[string]string, cli Config) (Config, error) {
	result := NewConfig()

	envConfig := Config{}
	if err := envconfig.Process("", &envConfig, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return result, err
	}

	return result.Apply(envConfig).Apply(cli), nil
}
