package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type queryConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
}

// QueryCommand returns the query subcommand.
func QueryCommand() *cli.Command {
	cfg := &queryConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "query").
		WithSynopsis("query <file> <expr> - Print paths of nodes matching an expression").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *queryConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: hierdoc query <file> <expr>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	paths, err := m.Query(args[1])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(cc.Out, "no matches")
		return nil
	}
	for _, p := range paths {
		if p == "" {
			p = "."
		}
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
