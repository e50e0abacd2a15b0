package services

// LineItem is one priced row of a project's network section (piping,
// ductwork, additional pool equipment). It is independent of the load
// graph except through its own quantity and unit price.
type LineItem struct {
	ID          string
	Description string
	Unit        string
	Qty         float64
	UnitPrice   float64
	Subtotal    float64
}

// CalcLineSubtotal prices one line: quantity × unit price.
func CalcLineSubtotal(qty, unitPrice float64) float64 {
	return qty * unitPrice
}

// SumLineSubtotals recomputes and sums every line's subtotal.
func SumLineSubtotals(lines []LineItem) float64 {
	var total float64
	for i := range lines {
		lines[i].Subtotal = CalcLineSubtotal(lines[i].Qty, lines[i].UnitPrice)
		total += lines[i].Subtotal
	}
	return total
}

// ApplyDiscount reduces a section total by a percentage in [0,100].
func ApplyDiscount(total, discountPercent float64) float64 {
	return total * (1 - discountPercent/100)
}

// Section is one named rollup bucket of a project (equipment, piping,
// ductwork). The discount applies at the section level only.
type Section struct {
	Name            string
	Subtotal        float64
	DiscountPercent float64
	Total           float64
}

// CalcSection fills Total from Subtotal and DiscountPercent.
func CalcSection(s *Section) {
	s.Total = ApplyDiscount(s.Subtotal, s.DiscountPercent)
}

// CalcGrandTotal sums the discounted section totals. The grand total is
// always derivable from sections; it is never independently settable.
func CalcGrandTotal(sections []Section) float64 {
	var grand float64
	for i := range sections {
		CalcSection(&sections[i])
		grand += sections[i].Total
	}
	return grand
}
