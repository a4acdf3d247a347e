package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	shopkeeper "github.com/niyati59/shopkeeper-app"
)

type updateCmd struct {
	name     string
	price    float64
	quantity int
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update the price and/or quantity of an item" }
func (*updateCmd) Usage() string {
	return `shopkeep update -name <name> [-price <price>] [-quantity <n>]

  Updates only the fields you pass; an omitted flag leaves that field
  unchanged.

Usage Examples:
# Reprice widgets without touching the stock level.
$ shopkeep update -name Widget -price 2.75

`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name.")
	f.Float64Var(&p.price, "price", 0, "New unit price.")
	f.IntVar(&p.quantity, "quantity", 0, "New stock quantity.")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	// Only the flags the user actually set become part of the update, so
	// "set to zero" and "leave unchanged" stay distinguishable.
	var update shopkeeper.ItemUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "price":
			price := shopkeeper.M(p.price)
			update.Price = &price
		case "quantity":
			quantity := p.quantity
			update.Quantity = &quantity
		}
	})
	if update.Price == nil && update.Quantity == nil {
		fmt.Fprintln(os.Stderr, "Error: pass -price and/or -quantity to update.")
		return subcommands.ExitUsageError
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := shop.UpdateItem(p.name, update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Item %s updated.\n", p.name)
	return subcommands.ExitSuccess
}
