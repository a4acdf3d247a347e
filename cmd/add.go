package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	shopkeeper "github.com/niyati59/shopkeeper-app"
)

type addCmd struct {
	name     string
	price    float64
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add stock for an item, creating it if new" }
func (*addCmd) Usage() string {
	return `shopkeep add -name <name> -price <price> -quantity <n>

  Adds units of an item to the inventory. If the item already exists, its
  quantity is increased and its price is left unchanged.

Usage Examples:
# Add 10 widgets at 2.50 each.
$ shopkeep add -name Widget -price 2.50 -quantity 10

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name.")
	f.Float64Var(&p.price, "price", 0, "Unit price for a new item.")
	f.IntVar(&p.quantity, "quantity", 0, "Units to add.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := shop.AddItem(p.name, shopkeeper.M(p.price), p.quantity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d of %s to the inventory.\n", p.quantity, p.name)
	return subcommands.ExitSuccess
}
