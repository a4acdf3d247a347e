package shopkeeper

import (
	"errors"
	"fmt"
	"log"
	"sort"
)

// Expected, recoverable outcomes reported to the caller for display. They
// are never fatal; only store I/O failures are.
var (
	// ErrNotFound is reported when an item name is absent from the inventory.
	ErrNotFound = errors.New("item not found in inventory")
	// ErrUnavailable is reported when a sale asks for a missing item or for
	// more units than are in stock.
	ErrUnavailable = errors.New("item not available or insufficient quantity")
	// ErrInvalidInput is reported when a negative price or quantity reaches
	// the manager boundary.
	ErrInvalidInput = errors.New("invalid input")
)

// Shopkeeper is the sole authority over the inventory and the sales log.
//
// Every successful mutation is durably persisted before the operation
// returns (write-through, full rewrite). If the save fails, the in-memory
// change is rolled back so memory and disk never drift.
//
// A Shopkeeper is not safe for concurrent use: the model is one interactive
// session issuing operations one at a time.
type Shopkeeper struct {
	inventory map[string]Item
	sales     []Sale
	store     *Store
}

// Open loads both stores and returns a ready Shopkeeper. Missing store files
// are created empty; unparseable ones are recovered as empty state.
func Open(store *Store) (*Shopkeeper, error) {
	inventory, status, err := store.LoadInventory()
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}
	if status == LoadRecovered {
		log.Printf("warning, inventory store %q is unreadable, starting with an empty inventory", store.InventoryPath)
	}
	sales, status, err := store.LoadSales()
	if err != nil {
		return nil, fmt.Errorf("could not load sales log: %w", err)
	}
	if status == LoadRecovered {
		log.Printf("warning, sales store %q is unreadable, starting with an empty sales log", store.SalesPath)
	}
	return &Shopkeeper{inventory: inventory, sales: sales, store: store}, nil
}

// AddItem adds stock. If the name already exists, its quantity is increased
// and its price left untouched; otherwise a new item is inserted.
func (s *Shopkeeper) AddItem(name string, price Money, quantity int) error {
	if price.IsNegative() || quantity < 0 {
		return fmt.Errorf("%w: price and quantity must not be negative", ErrInvalidInput)
	}

	previous, existed := s.inventory[name]
	if existed {
		item := previous
		item.Quantity += quantity
		s.inventory[name] = item
	} else {
		s.inventory[name] = Item{Name: name, Price: price, Quantity: quantity}
	}

	if err := s.store.SaveInventory(s.inventory); err != nil {
		s.restore(name, previous, existed)
		return err
	}
	return nil
}

// RemoveItem deletes an item from the inventory. It reports ErrNotFound when
// the name is absent; nothing is persisted on that path.
func (s *Shopkeeper) RemoveItem(name string) error {
	previous, existed := s.inventory[name]
	if !existed {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.inventory, name)

	if err := s.store.SaveInventory(s.inventory); err != nil {
		s.restore(name, previous, true)
		return err
	}
	return nil
}

// UpdateItem applies the supplied fields of the update, leaving the others
// untouched. It reports ErrNotFound when the name is absent; nothing is
// persisted on that path.
func (s *Shopkeeper) UpdateItem(name string, update ItemUpdate) error {
	previous, existed := s.inventory[name]
	if !existed {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if update.Price != nil && update.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	item := previous
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	s.inventory[name] = item

	if err := s.store.SaveInventory(s.inventory); err != nil {
		s.restore(name, previous, true)
		return err
	}
	return nil
}

// SellItem records a sale of quantity units. The sale is all-or-nothing: it
// succeeds only if the item exists with sufficient stock, in which case the
// stock is decremented, a sale record is appended, both stores are
// persisted, and the total price is returned. On ErrUnavailable nothing
// changes; this is a normal outcome, not an exceptional one.
func (s *Shopkeeper) SellItem(name string, quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	previous, existed := s.inventory[name]
	if !existed || previous.Quantity < quantity {
		return Money{}, fmt.Errorf("%w: %q", ErrUnavailable, name)
	}

	item := previous
	item.Quantity -= quantity
	s.inventory[name] = item
	total := item.Price.MulQuantity(quantity)
	s.sales = append(s.sales, Sale{Name: name, Quantity: quantity, TotalPrice: total})

	rollback := func() {
		s.restore(name, previous, true)
		s.sales = s.sales[:len(s.sales)-1]
	}
	if err := s.store.SaveInventory(s.inventory); err != nil {
		rollback()
		return Money{}, err
	}
	if err := s.store.SaveSales(s.sales); err != nil {
		rollback()
		// The inventory file already holds the decremented stock; put it
		// back in line with the rolled-back state.
		if err2 := s.store.SaveInventory(s.inventory); err2 != nil {
			return Money{}, errors.Join(err, err2)
		}
		return Money{}, err
	}
	return total, nil
}

// Items returns a snapshot of the inventory ordered by the given key,
// ascending, with the name as tiebreaker. Mutating the snapshot does not
// affect the inventory.
func (s *Shopkeeper) Items(key SortKey) []Item {
	items := make([]Item, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		switch key {
		case ByPrice:
			if !items[i].Price.Equal(items[j].Price) {
				return items[i].Price.LessThan(items[j].Price)
			}
		case ByQuantity:
			if items[i].Quantity != items[j].Quantity {
				return items[i].Quantity < items[j].Quantity
			}
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// Find returns the item with the given name, or ErrNotFound.
func (s *Shopkeeper) Find(name string) (Item, error) {
	item, ok := s.inventory[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return item, nil
}

// Sales returns a snapshot of the sales log in chronological order.
func (s *Shopkeeper) Sales() []Sale {
	sales := make([]Sale, len(s.sales))
	copy(sales, s.sales)
	return sales
}

// Report summarizes the shop: total of all sales plus the current listing.
type Report struct {
	TotalSales Money
	Items      []Item
}

// Report computes the sum of all sale totals along with the current
// inventory listing.
func (s *Shopkeeper) Report() Report {
	var total Money
	for _, sale := range s.sales {
		total = total.Add(sale.TotalPrice)
	}
	return Report{TotalSales: total, Items: s.Items(ByName)}
}

// restore puts an inventory entry back to its previous state after a failed
// save.
func (s *Shopkeeper) restore(name string, previous Item, existed bool) {
	if existed {
		s.inventory[name] = previous
	} else {
		delete(s.inventory, name)
	}
}
