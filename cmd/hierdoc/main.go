package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/hierdoc/go-hierdoc/cmd/hierdoc/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
