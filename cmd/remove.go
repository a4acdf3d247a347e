package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	name string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an item from the inventory" }
func (*removeCmd) Usage() string {
	return `shopkeep remove -name <name>

  Removes an item from the inventory entirely. Past sales of the item are
  kept in the sales log.
`
}

func (p *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name.")
}

func (p *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := shop.RemoveItem(p.name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Item %s removed from inventory.\n", p.name)
	return subcommands.ExitSuccess
}
