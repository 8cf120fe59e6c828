package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/docmodel"
)

type detectConfig struct {
	*cli.Command
}

// DetectCommand returns the detect subcommand.
func DetectCommand() *cli.Command {
	cfg := &detectConfig{}
	return cli.NewCommandAt(&cfg.Command, "detect").
		WithSynopsis("detect <file> - Sniff the format of a document").
		WithRun(cfg.run)
}

func (cfg *detectConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: hierdoc detect <file>", cli.ErrUsage)
	}
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	reg := docmodel.DefaultRegistry()
	fmt.Fprintln(cc.Out, reg.DetectFormat(text))
	return nil
}
