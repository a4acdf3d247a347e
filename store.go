package shopkeeper

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Default file names used when no explicit locations are configured.
const (
	DefaultInventoryFile = "inventory.json"
	DefaultSalesFile     = "sales.json"
)

// LoadStatus reports how a load obtained its state.
type LoadStatus int

const (
	// LoadOK means the file existed and was decoded.
	LoadOK LoadStatus = iota
	// LoadInitialized means the file was missing and has been created empty.
	LoadInitialized
	// LoadRecovered means the file content was unparseable and the state was
	// reset to empty. The file itself is left untouched until the next save.
	LoadRecovered
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadInitialized:
		return "initialized"
	case LoadRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Store persists the inventory and the sales log to two independent files.
//
// Saves are full rewrites: every save writes the entire current state.
// The rewrite is atomic (write to a temp file, then rename), so a crash
// mid-save leaves the previous file intact.
type Store struct {
	InventoryPath string
	SalesPath     string
}

// NewStore creates a store persisting to the two given file paths.
func NewStore(inventoryPath, salesPath string) *Store {
	return &Store{InventoryPath: inventoryPath, SalesPath: salesPath}
}

// DefaultStore creates a store using the default file names in the current
// directory.
func DefaultStore() *Store {
	return NewStore(DefaultInventoryFile, DefaultSalesFile)
}

// LoadInventory reads the inventory file.
//
// A missing file is created holding an empty inventory. Unparseable content
// is downgraded to an empty inventory, reported through the LoadStatus.
// Only genuine I/O faults return an error.
func (s *Store) LoadInventory() (map[string]Item, LoadStatus, error) {
	f, err := os.Open(s.InventoryPath)
	if errors.Is(err, fs.ErrNotExist) {
		empty := make(map[string]Item)
		if err := s.SaveInventory(empty); err != nil {
			return nil, LoadInitialized, fmt.Errorf("could not initialize inventory store %q: %w", s.InventoryPath, err)
		}
		return empty, LoadInitialized, nil
	}
	if err != nil {
		return nil, LoadOK, fmt.Errorf("could not open inventory store %q: %w", s.InventoryPath, err)
	}
	defer f.Close()

	inventory, err := DecodeInventory(f)
	if err != nil {
		// Corruption is downgraded to "start fresh", in memory only until
		// the next successful save.
		return make(map[string]Item), LoadRecovered, nil
	}
	return inventory, LoadOK, nil
}

// SaveInventory rewrites the inventory file with the full current state.
func (s *Store) SaveInventory(inventory map[string]Item) error {
	return writeAtomic(s.InventoryPath, func(w io.Writer) error {
		return EncodeInventory(w, inventory)
	})
}

// LoadSales reads the sales log file. Same contract as LoadInventory, with
// an empty sequence in place of an empty mapping.
func (s *Store) LoadSales() ([]Sale, LoadStatus, error) {
	f, err := os.Open(s.SalesPath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.SaveSales(nil); err != nil {
			return nil, LoadInitialized, fmt.Errorf("could not initialize sales store %q: %w", s.SalesPath, err)
		}
		return []Sale{}, LoadInitialized, nil
	}
	if err != nil {
		return nil, LoadOK, fmt.Errorf("could not open sales store %q: %w", s.SalesPath, err)
	}
	defer f.Close()

	sales, err := DecodeSales(f)
	if err != nil {
		return []Sale{}, LoadRecovered, nil
	}
	return sales, LoadOK, nil
}

// SaveSales rewrites the sales log file with the full current log.
func (s *Store) SaveSales(sales []Sale) error {
	return writeAtomic(s.SalesPath, func(w io.Writer) error {
		return EncodeSales(w, sales)
	})
}

// writeAtomic writes to a temp file in the target's directory and renames it
// over the target, so readers never observe a partial write.
func writeAtomic(path string, encode func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}
