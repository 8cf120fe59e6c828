package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type patchConfig struct {
	*cli.Command
}

// PatchCommand returns the patch subcommand.
func PatchCommand() *cli.Command {
	cfg := &patchConfig{}
	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch <file> <patch.json> - Apply an RFC 6902 patch to a JSON document").
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: hierdoc patch <file> <patch.json>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], "")
	if err != nil {
		return err
	}
	patch, err := readInput(args[1])
	if err != nil {
		return err
	}
	if err := m.PatchJSON([]byte(patch)); err != nil {
		return err
	}
	return writeOutput(cc.Out, args[0], m.Source())
}
