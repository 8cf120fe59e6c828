// Package commands implements the hierdoc command tree.
package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `hierdoc - format-agnostic hierarchical document tool

Usage:
  hierdoc detect <file>                    Sniff the format of a document
  hierdoc convert <file> --to <format>     Convert between formats
  hierdoc fmt <file>                       Reformat a document in place style
  hierdoc print <file>                     Pretty-print (colored on a TTY)
  hierdoc get <file> <path>                Print the value at a path
  hierdoc set <file> <path> <value>        Update the value at a path
  hierdoc rm <file> <path>                 Remove the node at a path
  hierdoc mv <file> <path> <parent> [idx]  Move a node under a new parent
  hierdoc add <file> <parent> <kind> <name> [value]
                                           Attach a new node under a parent
  hierdoc diff <file> <other>              Diff two serializations
  hierdoc patch <file> <patch.json>        Apply an RFC 6902 patch (JSON)
  hierdoc query <file> <expr>              Find nodes matching an expression

Formats: json, xml, yaml, markdown.

Examples:
  hierdoc convert config.yaml --to json
  hierdoc get config.yaml server.port
  hierdoc set config.yaml server.port 8080
  hierdoc query config.json 'kind == "scalar" && name == "port"'`

// Root returns the root command for hierdoc.
func Root() *cli.Command {
	return cli.NewCommand("hierdoc").
		WithSynopsis("hierdoc - format-agnostic hierarchical document tool").
		WithDescription(usageText).
		WithSubs(
			DetectCommand(),
			ConvertCommand(),
			FmtCommand(),
			PrintCommand(),
			GetCommand(),
			SetCommand(),
			RemoveCommand(),
			MoveCommand(),
			AddCommand(),
			DiffCommand(),
			PatchCommand(),
			QueryCommand(),
		)
}
