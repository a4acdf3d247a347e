package cmd

import (
	"context"
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	shopkeeper "github.com/niyati59/shopkeeper-app"
)

// useTempStore points the global store flags at a fresh temp directory.
func useTempStore(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	inventoryPath := filepath.Join(dir, shopkeeper.DefaultInventoryFile)
	salesPath := filepath.Join(dir, shopkeeper.DefaultSalesFile)

	oldInventoryFile, oldSalesFile := inventoryFile, salesFile
	inventoryFile, salesFile = &inventoryPath, &salesPath
	t.Cleanup(func() { inventoryFile, salesFile = oldInventoryFile, oldSalesFile })
}

// run executes a subcommand with the given arguments.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("could not parse flags %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestAddSellFlow(t *testing.T) {
	useTempStore(t)

	if status := run(t, &addCmd{}, "-name", "Widget", "-price", "2.50", "-quantity", "10"); status != subcommands.ExitSuccess {
		t.Fatalf("add returned %v, want ExitSuccess", status)
	}
	if status := run(t, &sellCmd{}, "-name", "Widget", "-quantity", "4"); status != subcommands.ExitSuccess {
		t.Fatalf("sell returned %v, want ExitSuccess", status)
	}
	// Selling more than the remaining stock fails without touching state.
	if status := run(t, &sellCmd{}, "-name", "Widget", "-quantity", "100"); status != subcommands.ExitFailure {
		t.Fatalf("oversell returned %v, want ExitFailure", status)
	}

	shop, err := openShop()
	if err != nil {
		t.Fatalf("openShop() returned an unexpected error: %v", err)
	}
	item, err := shop.Find("Widget")
	if err != nil {
		t.Fatalf("Find(Widget) returned an unexpected error: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("Widget quantity = %d, want 6", item.Quantity)
	}
	if sales := shop.Sales(); len(sales) != 1 {
		t.Errorf("sales log has %d records, want 1", len(sales))
	}
}

func TestUpdateOnlyTouchesSuppliedFlags(t *testing.T) {
	useTempStore(t)

	if status := run(t, &addCmd{}, "-name", "Widget", "-price", "2.50", "-quantity", "10"); status != subcommands.ExitSuccess {
		t.Fatalf("add returned %v, want ExitSuccess", status)
	}
	if status := run(t, &updateCmd{}, "-name", "Widget", "-price", "3.00"); status != subcommands.ExitSuccess {
		t.Fatalf("update returned %v, want ExitSuccess", status)
	}

	shop, err := openShop()
	if err != nil {
		t.Fatalf("openShop() returned an unexpected error: %v", err)
	}
	item, err := shop.Find("Widget")
	if err != nil {
		t.Fatalf("Find(Widget) returned an unexpected error: %v", err)
	}
	if !item.Price.Equal(shopkeeper.M(3.00)) {
		t.Errorf("price = %v, want %v", item.Price, shopkeeper.M(3.00))
	}
	if item.Quantity != 10 {
		t.Errorf("quantity = %d, want 10 (must be untouched)", item.Quantity)
	}
}

func TestUpdateRequiresAField(t *testing.T) {
	useTempStore(t)

	if status := run(t, &updateCmd{}, "-name", "Widget"); status != subcommands.ExitUsageError {
		t.Errorf("update without fields returned %v, want ExitUsageError", status)
	}
}

func TestRemoveMissingItemFails(t *testing.T) {
	useTempStore(t)

	if status := run(t, &removeCmd{}, "-name", "Ghost"); status != subcommands.ExitFailure {
		t.Errorf("remove of a missing item returned %v, want ExitFailure", status)
	}

	shop, err := openShop()
	if err != nil {
		t.Fatalf("openShop() returned an unexpected error: %v", err)
	}
	if _, err := shop.Find("Ghost"); !errors.Is(err, shopkeeper.ErrNotFound) {
		t.Errorf("Find(Ghost) = %v, want ErrNotFound", err)
	}
}
