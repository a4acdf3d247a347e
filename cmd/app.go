// Package cmd implements the CLI application to manage the shop.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	shopkeeper "github.com/niyati59/shopkeeper-app"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")
	c.Register(&updateCmd{}, "inventory")
	c.Register(&inventoryCmd{}, "inventory")
	c.Register(&findCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&reportCmd{}, "sales")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", shopkeeper.DefaultInventoryFile, "Path to the inventory file (JSON format)")
var salesFile = flag.String("sales-file", shopkeeper.DefaultSalesFile, "Path to the sales log file (JSON format)")

// openShop is the central function to open the shop state from the
// configured store files. Missing files are created empty.
func openShop() (*shopkeeper.Shopkeeper, error) {
	store := shopkeeper.NewStore(*inventoryFile, *salesFile)
	return shopkeeper.Open(store)
}
