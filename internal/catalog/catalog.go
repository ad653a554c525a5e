// Package catalog holds the fixed, externally supplied product list and the
// read-only queries the storefront runs against it. The catalog is immutable
// after construction; every lookup relies on product IDs being unique.
package catalog

type Product struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	Unit        string
	Description string
	ImageSrc    string
}

// Catalog is an ordered product list plus the bestseller ID selection.
type Catalog struct {
	products      []Product
	byID          map[string]Product
	bestsellerIDs []string
}

func New(products []Product, bestsellerIDs []string) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products:      products,
		byID:          byID,
		bestsellerIDs: bestsellerIDs,
	}
}

// FindByID returns the product for the given ID.
func (c *Catalog) FindByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the catalog in its original order. The slice is a copy;
// callers may reorder it freely (FilterAndSort does).
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Bestsellers resolves the bestseller ID list against the catalog, keeping
// the configured order. IDs with no matching product are skipped.
func (c *Catalog) Bestsellers() []Product {
	out := make([]Product, 0, len(c.bestsellerIDs))
	for _, id := range c.bestsellerIDs {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
