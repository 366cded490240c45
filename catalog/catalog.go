// Package catalog holds the branch and product data the storefront renders.
// The data originates from a simulated upstream backend and is served from
// memory once loaded.
package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ray-remotestate/storefront/models"
)

// Catalog is the in-memory view of branches and products. Reads are served
// from the last loaded snapshot.
type Catalog struct {
	mu       sync.RWMutex
	branches []models.Branch
	products []models.Product
}

func New() *Catalog {
	return &Catalog{}
}

// Load replaces the catalog contents with a fresh snapshot.
func (c *Catalog) Load(branches []models.Branch, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.branches = branches
	c.products = products
}

func (c *Catalog) Branches() []models.Branch {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Branch, len(c.branches))
	copy(out, c.branches)
	return out
}

func (c *Catalog) Branch(id uuid.UUID) (models.Branch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.branches {
		if b.ID == id {
			return b, true
		}
	}
	return models.Branch{}, false
}

func (c *Catalog) ProductsByBranch(branchID uuid.UUID) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Product
	for _, p := range c.products {
		if p.BranchID == branchID {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Product(id int64) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
