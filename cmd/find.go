package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/niyati59/shopkeeper-app/renderer"
)

type findCmd struct {
	name string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "look up a single item by name" }
func (*findCmd) Usage() string {
	return `shopkeep find -name <name>

  Shows the price and stock level of one item.
`
}

func (p *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name.")
}

func (p *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := shop.Find(p.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Item(item))
	return subcommands.ExitSuccess
}
