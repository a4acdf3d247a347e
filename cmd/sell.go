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

type sellCmd struct {
	name     string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of an item and record the sale" }
func (*sellCmd) Usage() string {
	return `shopkeep sell -name <name> -quantity <n>

  Sells units of an item: decrements the stock and appends a record to the
  sales log. The sale is all-or-nothing; asking for more units than are in
  stock sells nothing.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name.")
	f.IntVar(&p.quantity, "quantity", 0, "Units to sell.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total, err := shop.SellItem(p.name, p.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale := shopkeeper.Sale{Name: p.name, Quantity: p.quantity, TotalPrice: total}
	fmt.Println(renderer.SaleLine(sale))
	return subcommands.ExitSuccess
}
