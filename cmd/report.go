package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/niyati59/shopkeeper-app/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show total sales and the current inventory" }
func (*reportCmd) Usage() string {
	return `shopkeep report

  Shows the sum of all recorded sales followed by the current inventory.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop, err := openShop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(shop.Report()))
	return subcommands.ExitSuccess
}
