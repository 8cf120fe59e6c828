package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/docmodel"
)

type convertConfig struct {
	*cli.Command
	From    string `cli:"name=from desc='source format (sniffed when empty)'"`
	To      string `cli:"name=to desc='target format'"`
	Verbose bool   `cli:"name=verbose aliases=v desc='verbose logging'"`
}

// ConvertCommand returns the convert subcommand.
func ConvertCommand() *cli.Command {
	cfg := &convertConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "convert").
		WithSynopsis("convert <file> --to <format> - Convert between formats").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *convertConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("convert expects one file, got %d args", len(args))
	}
	if cfg.To == "" {
		return fmt.Errorf("convert requires --to")
	}
	lg := newLogger(cfg.Verbose)
	m, err := loadModel(args[0], cfg.From)
	if err != nil {
		return err
	}
	lg.Debug("loaded", "file", args[0], "format", m.Format())

	reg := docmodel.DefaultRegistry()
	h, err := reg.Resolve(cfg.To)
	if err != nil {
		return err
	}
	out, err := h.Serialize(m.Root())
	if err != nil {
		return fmt.Errorf("serialize as %s: %w", cfg.To, err)
	}
	fmt.Fprintln(cc.Out, out)
	return nil
}
