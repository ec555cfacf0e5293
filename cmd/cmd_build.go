package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/cheggaaa/pb"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/loader"
	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

type CmdBuild struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("build",
		"Build a topology",
		"Build the shared arc topology from the configured LOD inputs",
		&CmdBuild{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBuild) Usage() string {
	return "-c config.yaml [output.json]"
}

func (cmd CmdBuild) Execute(args []string) error {
	if cmd.global.Config == "" {
		return errors.New("No configuration specified, Usage: " + cmd.Usage())
	}

	config, err := loader.LoadConfig(cmd.global.Config)
	if err != nil {
		return fmt.Errorf("Failed to load config: %s", err.Error())
	}

	out := config.Output
	if len(args) == 1 {
		out = args[0]
	}
	if out == "" {
		return errors.New("No output path specified")
	}

	names := make([]string, 0, len(config.LODs))
	for _, l := range config.LODs {
		names = append(names, l.Name)
	}

	builder := topology.NewBuilder(config.Quantization, names)

	var bar *pb.ProgressBar
	current := ""
	builder.Progress = func(lod string, done, total int) {
		if lod != current {
			if bar != nil {
				bar.Finish()
			}
			bar = pb.New(total).Prefix(lod)
			bar.Start()
			current = lod
		}
		bar.Set(done)
	}

	topo, err := builder.Build(loader.NewFileSource(config))
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("Failed to build: %s", err.Error())
	}

	err = topo.WriteTo(out)
	if err != nil {
		return fmt.Errorf("Failed to write %s: %s", out, err.Error())
	}

	log.Printf("Wrote %s: %d arcs, %d LODs", out, topo.Meta.ArcCount, len(topo.LODs))
	return nil
}
