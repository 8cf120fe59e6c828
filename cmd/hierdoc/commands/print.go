package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/handler"
)

type printConfig struct {
	*cli.Command
	Format  string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
	NoColor bool   `cli:"name=no-color desc='disable colored output'"`
}

// PrintCommand returns the print subcommand.
func PrintCommand() *cli.Command {
	cfg := &printConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "print").
		WithSynopsis("print <file> - Pretty-print a document, colored on a TTY").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *printConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: hierdoc print <file>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	var sOpts []handler.Option
	if !cfg.NoColor && stdoutIsTTY() {
		sOpts = append(sOpts, handler.WithColors(handler.NewColors()))
	}
	out, err := m.Serialize(sOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, out)
	return nil
}
