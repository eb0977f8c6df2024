package config

var Presets = map[string]*Config{
	"baseline": {
		N: 100, TFinal: 10.0, K: 0.0225, W: 0.5, Gamma: 0.5,
		NList: []int{20, 40, 60, 80, 100},
	},
	"fast-turnover": {
		N: 100, TFinal: 10.0, K: 0.0225, W: 2.0, Gamma: 0.5,
		NList: []int{20, 40, 60, 80, 100},
	},
	"stiff": {
		N: 100, TFinal: 10.0, K: 0.0225, W: 0.5, Gamma: 5.0,
		NList: []int{20, 40, 60, 80, 100},
	},
	"weak-coupling": {
		N: 100, TFinal: 10.0, K: 0.0225, W: 0.5, Gamma: 0.1,
		NList: []int{20, 40, 60, 80, 100},
	},
	"diffusive": {
		N: 100, TFinal: 10.0, K: 0.005, W: 0.5, Gamma: 0.5,
		NList: []int{20, 40, 60, 80, 100},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
