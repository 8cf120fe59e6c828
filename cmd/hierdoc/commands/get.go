package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type getConfig struct {
	*cli.Command
	Format string `cli:"name=format aliases=f desc='source format (sniffed when empty)'"`
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <file> <path> - Print the node at a path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: hierdoc get <file> <path>", cli.ErrUsage)
	}
	m, err := loadModel(args[0], cfg.Format)
	if err != nil {
		return err
	}
	n, ok := m.Find(args[1])
	if !ok {
		return fmt.Errorf("no node at %q", args[1])
	}
	if n.Kind.HasValue() {
		fmt.Fprintln(cc.Out, n.Value.Text())
		return nil
	}
	fmt.Fprintf(cc.Out, "%s (%d children)\n", n.Kind, len(n.Children))
	return nil
}
