package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

func TestLoadConfig(t *testing.T) {
	is := is.New(t)

	data := `
quantization: 50000
output: topology.json
lods:
  - name: lod0
    file: lod0.json
  - name: lod1
    file: lod1.json
    simplify: 0.0001
`
	file := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(file, []byte(data), 0644)
	is.NoErr(err)

	config, err := LoadConfig(file)
	is.NoErr(err)
	is.Equal(config.Quantization, 50000)
	is.Equal(config.Output, "topology.json")
	is.Equal(len(config.LODs), 2)
	is.Equal(config.LODs[0].Name, "lod0")
	is.Equal(config.LODs[1].Simplify, 0.0001)
}

func TestLoadConfigDefaults(t *testing.T) {
	is := is.New(t)

	data := `
lods:
  - name: lod0
    file: lod0.json
`
	file := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(file, []byte(data), 0644)
	is.NoErr(err)

	config, err := LoadConfig(file)
	is.NoErr(err)
	is.Equal(config.Quantization, topology.DefaultQuantization)
}

func TestLoadConfigErrors(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	is.Err(err)

	empty := filepath.Join(dir, "empty.yaml")
	err = os.WriteFile(empty, []byte("output: x.json\n"), 0644)
	is.NoErr(err)
	_, err = LoadConfig(empty)
	is.Err(err)
}
