package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type removeConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
}

// RemoveCommand returns the rm subcommand.
func RemoveCommand() *cli.Command {
	cfg := &removeConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "rm").
		WithSynopsis("rm <file> <path> - Remove the node at a path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *removeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: hierdoc rm <file> <path>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	if err := m.Remove(args[1]); err != nil {
		return err
	}
	return writeOutput(cc.Out, args[0], m.Source())
}
