package loader

import (
	"errors"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

// Config describes one build: the quantization factor, the ordered
// list of LOD inputs and the output path. LOD order is significant,
// arcs are assigned indices in first-seen order.
type Config struct {
	Quantization int          `yaml:"quantization"`
	Output       string       `yaml:"output"`
	LODs         []*LODConfig `yaml:"lods"`
}

type LODConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`

	// Simplify, when > 0, is the Visvalingam area threshold applied
	// to every feature of this LOD before encoding.
	Simplify float64 `yaml:"simplify"`
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if len(config.LODs) == 0 {
		return nil, errors.New("No LODs defined!")
	}
	if config.Quantization == 0 {
		config.Quantization = topology.DefaultQuantization
	}

	return config, nil
}
