package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Build configuration file"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}
