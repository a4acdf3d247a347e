package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	shopkeeper "github.com/niyati59/shopkeeper-app"
	"github.com/niyati59/shopkeeper-app/renderer"
)

type inventoryCmd struct {
	sortBy string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list all items in the inventory" }
func (*inventoryCmd) Usage() string {
	return `shopkeep inventory [-sort <name|price|quantity>]

  Lists the inventory as a table, optionally sorted by name, price or
  quantity.
`
}

func (p *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sortBy, "sort", "", "Sort key (name, price, quantity). Defaults to name.")
}

func (p *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := shopkeeper.ByName
	if p.sortBy != "" {
		k, err := shopkeeper.ParseSortKey(p.sortBy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		key = k
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Inventory(shop.Items(key)))
	return subcommands.ExitSuccess
}
