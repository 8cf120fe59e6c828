package commands

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

type moveConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
}

// MoveCommand returns the mv subcommand.
func MoveCommand() *cli.Command {
	cfg := &moveConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "mv").
		WithSynopsis("mv <file> <path> <new-parent> [index] - Move a node").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *moveConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: usage: hierdoc mv <file> <path> <new-parent> [index]", cli.ErrUsage)
	}
	at := -1
	if len(args) == 4 {
		at, err = strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("%w: bad index %q", cli.ErrUsage, args[3])
		}
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	if err := m.Move(args[1], args[2], at); err != nil {
		return err
	}
	return writeOutput(cc.Out, args[0], m.Source())
}
