package commands

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/handler/yamlfmt"
	"github.com/hierdoc/go-hierdoc/ir"
)

type addConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
	String bool   `cli:"name=string aliases=s desc='treat the value as a raw string'"`
}

// AddCommand returns the add subcommand.
func AddCommand() *cli.Command {
	cfg := &addConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "add").
		WithSynopsis("add <file> <parent> <kind> <name> [value] - Attach a new node").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *addConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 4 || len(args) > 5 {
		return fmt.Errorf("%w: usage: hierdoc add <file> <parent> <kind> <name> [value]", cli.ErrUsage)
	}
	kind, err := ir.ParseKind(args[2])
	if err != nil {
		return fmt.Errorf("%w: kind must be one of %s", cli.ErrUsage, kindList())
	}
	child := ir.New(kind, args[3])
	if len(args) == 5 {
		if !kind.HasValue() {
			return fmt.Errorf("%w: %s nodes carry no value", cli.ErrUsage, kind)
		}
		v := yamlfmt.Coerce(args[4])
		if cfg.String {
			v = ir.String(args[4])
		}
		child.Value = v
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	if err := m.AddChild(args[1], child); err != nil {
		return err
	}
	return writeOutput(cc.Out, args[0], m.Source())
}

func kindList() string {
	names := make([]string, 0, len(ir.Kinds()))
	for _, k := range ir.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
