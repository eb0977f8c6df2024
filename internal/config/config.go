package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/actsim/internal/acto"
)

const (
	DefaultN      = 100
	DefaultTFinal = 10.0
	DefaultK      = 0.0225
	DefaultW      = 0.5
	DefaultGamma  = 0.5
)

type Config struct {
	N      int     `yaml:"n"`
	TFinal float64 `yaml:"t_final"`
	K      float64 `yaml:"k"`
	W      float64 `yaml:"w"`
	Gamma  float64 `yaml:"gamma"`
	NList  []int   `yaml:"n_list"`
}

func DefaultConfig() *Config {
	return &Config{
		N:      DefaultN,
		TFinal: DefaultTFinal,
		K:      DefaultK,
		W:      DefaultW,
		Gamma:  DefaultGamma,
		NList:  []int{20, 40, 60, 80, 100},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the config onto a solver parameter bundle.
func (c *Config) Params() acto.Params {
	return acto.Params{
		N:      c.N,
		TFinal: c.TFinal,
		K:      c.K,
		W:      c.W,
		Gamma:  c.Gamma,
	}
}
