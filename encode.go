package shopkeeper

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeInventory decodes an inventory from its JSON form: an object mapping
// item names to items.
func DecodeInventory(r io.Reader) (map[string]Item, error) {
	inventory := make(map[string]Item)
	if err := json.NewDecoder(r).Decode(&inventory); err != nil {
		return nil, fmt.Errorf("could not decode inventory: %w", err)
	}
	// A JSON null decodes to a nil map; callers always get a usable one.
	if inventory == nil {
		inventory = make(map[string]Item)
	}
	// The key is authoritative for the name.
	for name, item := range inventory {
		if item.Name != name {
			item.Name = name
			inventory[name] = item
		}
	}
	return inventory, nil
}

// EncodeInventory writes the whole inventory as a JSON object keyed by item
// name. Keys are emitted in sorted order for canonical output.
func EncodeInventory(w io.Writer, inventory map[string]Item) error {
	data, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf("could not encode inventory: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write inventory: %w", err)
	}
	return nil
}

// DecodeSales decodes a sales log from its JSON form: an array of sale
// records in chronological order.
func DecodeSales(r io.Reader) ([]Sale, error) {
	sales := make([]Sale, 0)
	if err := json.NewDecoder(r).Decode(&sales); err != nil {
		return nil, fmt.Errorf("could not decode sales log: %w", err)
	}
	return sales, nil
}

// EncodeSales writes the whole sales log as a JSON array, preserving the
// chronological order. An empty log is written as [] rather than null.
func EncodeSales(w io.Writer, sales []Sale) error {
	if sales == nil {
		sales = []Sale{}
	}
	data, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("could not encode sales log: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write sales log: %w", err)
	}
	return nil
}
