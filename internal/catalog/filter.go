package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the shop-page ordering.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// CategoryAll is the filter sentinel that keeps every product.
const CategoryAll = "all"

// FilterAndSort returns the products matching the category selector, ordered
// by the sort key. The sort is stable, so SortDefault (and ties under any
// other key) preserve catalog order. The input slice is never mutated.
//
// Name ordering uses a case-folding English collation, matching the
// locale-aware comparison the shop page sorts by.
func FilterAndSort(products []Product, category string, key SortKey) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category == CategoryAll || p.Category == category {
			filtered = append(filtered, p)
		}
	}

	if key == SortDefault || key == "" {
		return filtered
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch key {
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return b.Price < a.Price
		case SortNameAsc:
			return coll.CompareString(a.Name, b.Name) < 0
		case SortNameDesc:
			return coll.CompareString(b.Name, a.Name) < 0
		default:
			return false
		}
	})
	return filtered
}
