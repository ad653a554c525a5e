package cart

import (
	"log/slog"

	"github.com/jcmexdev/freshmart/internal/catalog"
)

// LineView is one renderable cart row: the line item joined with its catalog
// product and the computed line total.
type LineView struct {
	ProductID string
	Name      string
	UnitPrice float64
	Unit      string
	Quantity  int
	LineTotal float64
	ImageSrc  string
}

// View is the cart modal's render model.
type View struct {
	Lines    []LineView
	Subtotal float64

	// IsEmpty is defined on the underlying cart, not on the resolvable
	// lines: a cart holding only dangling references is non-empty with zero
	// renderable lines.
	IsEmpty bool
}

// Project joins the cart's line items with the catalog. Line items whose
// product no longer exists are skipped with a warning; projection degrades
// by omission instead of failing.
func Project(items []LineItem, cat *catalog.Catalog) View {
	view := View{
		Lines:   make([]LineView, 0, len(items)),
		IsEmpty: len(items) == 0,
	}

	for _, it := range items {
		p, ok := cat.FindByID(it.ProductID)
		if !ok {
			slog.Warn("cart projection: product not found, line skipped", "product_id", it.ProductID)
			continue
		}
		lineTotal := p.Price * float64(it.Quantity)
		view.Lines = append(view.Lines, LineView{
			ProductID: it.ProductID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Unit:      p.Unit,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
			ImageSrc:  p.ImageSrc,
		})
		view.Subtotal += lineTotal
	}

	return view
}
