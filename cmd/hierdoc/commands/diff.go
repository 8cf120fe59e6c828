package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/textdiff"
)

type diffConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <file> <other> - Diff two documents' serializations").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: hierdoc diff <file> <other>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	other, err := readInput(args[1])
	if err != nil {
		return err
	}
	cur, err := m.Serialize()
	if err != nil {
		return err
	}
	if !textdiff.Changed(cur, other) {
		fmt.Fprintln(cc.Out, "no differences")
		return nil
	}
	if stdoutIsTTY() {
		fmt.Fprint(cc.Out, textdiff.Pretty(cur, other))
		return nil
	}
	out, err := m.Diff(other)
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, out)
	return nil
}
