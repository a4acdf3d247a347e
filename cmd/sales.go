package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/niyati59/shopkeeper-app/renderer"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list all recorded sales" }
func (*salesCmd) Usage() string {
	return `shopkeep sales

  Lists the sales log as a table, in chronological order.
`
}

func (*salesCmd) SetFlags(f *flag.FlagSet) {}

func (p *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Sales(shop.Sales()))
	return subcommands.ExitSuccess
}
