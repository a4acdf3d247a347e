package shopkeeper

import "fmt"

// Item represents one catalog entry. The name acts as the primary key of the
// inventory.
type Item struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
}

// ItemUpdate carries a partial update for an item. A nil field means "leave
// unchanged", which keeps "clear to zero" and "not supplied" distinguishable.
type ItemUpdate struct {
	Price    *Money
	Quantity *int
}

// SortKey defines the ordering of an inventory listing.
type SortKey int

const (
	// ByName orders items alphabetically by name.
	ByName SortKey = iota
	// ByPrice orders items by ascending unit price.
	ByPrice
	// ByQuantity orders items by ascending units in stock.
	ByQuantity
)

func (k SortKey) String() string {
	switch k {
	case ByName:
		return "name"
	case ByPrice:
		return "price"
	case ByQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "name":
		return ByName, nil
	case "price":
		return ByPrice, nil
	case "quantity":
		return ByQuantity, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q", s)
	}
}
