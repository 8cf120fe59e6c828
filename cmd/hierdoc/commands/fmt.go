package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type fmtConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
	Write  bool   `cli:"name=write aliases=w desc='rewrite the file instead of printing'"`
}

// FmtCommand returns the fmt subcommand.
func FmtCommand() *cli.Command {
	cfg := &fmtConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "fmt").
		WithSynopsis("fmt [-w] <file> - Reformat a document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *fmtConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: hierdoc fmt [-w] <file>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	out, err := m.Serialize()
	if err != nil {
		return err
	}
	if cfg.Write && args[0] != "-" {
		return writeOutput(cc.Out, args[0], out)
	}
	fmt.Fprint(cc.Out, out)
	return nil
}
