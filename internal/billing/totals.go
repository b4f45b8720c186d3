package billing

// TaxRate is the flat tax applied to every quote and invoice.
const TaxRate = 0.10

// LineItem is one billable row inside a quote or invoice. Quantity and
// UnitPrice are pointers so an omitted value can be told apart from an
// explicit zero: omitted quantity means 1, omitted price means 0.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"price,omitempty"`
}

// Qty returns the effective quantity for the item.
func (i LineItem) Qty() float64 {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

// Price returns the effective unit price for the item.
func (i LineItem) Price() float64 {
	if i.UnitPrice == nil {
		return 0
	}
	return *i.UnitPrice
}

// Amount returns quantity x unit price for the item.
func (i LineItem) Amount() float64 {
	return i.Qty() * i.Price()
}

// Totals is the derived money summary of a record's line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute derives subtotal, tax, and total from line items. Negative
// quantities and prices pass through unchanged so credit and discount lines
// keep working. Pure and deterministic; callers recompute on every create
// and full update, never on status-only changes.
func Compute(items []LineItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
