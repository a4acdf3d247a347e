package shopkeeper

import (
	"os"
	"path/filepath"
	"testing"
)

// newTestStore creates a store backed by files in a fresh temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(filepath.Join(dir, DefaultInventoryFile), filepath.Join(dir, DefaultSalesFile))
}

// newTestShop opens a shopkeeper over an empty temp store.
func newTestShop(t *testing.T) *Shopkeeper {
	t.Helper()
	shop, err := Open(newTestStore(t))
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	return shop
}

// unwritablePath returns a path no save can create: its parent is a regular
// file.
func unwritablePath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(blocker, "store.json")
}

// mustAdd adds an item and fails the test on error.
func mustAdd(t *testing.T, shop *Shopkeeper, name string, price float64, quantity int) {
	t.Helper()
	if err := shop.AddItem(name, M(price), quantity); err != nil {
		t.Fatalf("AddItem(%q, %v, %d) returned an unexpected error: %v", name, price, quantity, err)
	}
}
