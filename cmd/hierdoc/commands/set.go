package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/handler/yamlfmt"
	"github.com/hierdoc/go-hierdoc/ir"
)

type setConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
	String bool   `cli:"name=string aliases=s desc='treat the value as a raw string'"`
}

// SetCommand returns the set subcommand.
func SetCommand() *cli.Command {
	cfg := &setConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "set").
		WithSynopsis("set <file> <path> <value> - Update the value at a path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *setConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: hierdoc set <file> <path> <value>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	// Command-line values arrive untyped; the YAML coercion ladder gives
	// "8080" and "true" their natural types unless --string is set.
	v := yamlfmt.Coerce(args[2])
	if cfg.String {
		v = ir.String(args[2])
	}
	if err := m.UpdateValue(args[1], v); err != nil {
		return err
	}
	return writeOutput(cc.Out, args[0], m.Source())
}
