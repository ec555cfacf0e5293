package cmd

import (
	"fmt"
	"os"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/benchmark"
)

type CmdBench struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("bench",
		"Benchmark arc reuse",
		"Report arc reuse and quantization statistics for a built topology",
		&CmdBench{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBench) Usage() string {
	return "topology.json"
}

func (cmd CmdBench) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Topology file not specified, Usage: %s", cmd.Usage())
	}

	report, err := benchmark.RunFile(args[0])
	if err != nil {
		return fmt.Errorf("Failed to benchmark: %s", err.Error())
	}

	return report.Write(os.Stdout)
}
