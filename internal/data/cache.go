package data

import (
	"sync"

	"steel-procurement/internal/model"
)

// SupplierCache loads the supplier table once and hands out the same slice
// afterwards. The service layer owns one of these and passes resolved tables
// into the sourcing engine; the engine itself never touches the filesystem.
type SupplierCache struct {
	path string

	mu     sync.Mutex
	loaded bool
	table  []model.Supplier
	err    error
}

func NewSupplierCache(path string) *SupplierCache {
	return &SupplierCache{path: path}
}

// Table returns the cached supplier table, loading it on first use.
// A load failure is not cached, so a fixed file is picked up on retry.
func (c *SupplierCache) Table() ([]model.Supplier, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.table, nil
	}
	table, err := LoadSuppliers(c.path)
	if err != nil {
		return nil, err
	}
	c.table = table
	c.loaded = true
	return c.table, nil
}
