package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateOfferPDF creates a PDF document for an offer using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateOfferPDF(data *OfferExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addOfferHeader(m, data)
	addOfferCustomerBlock(m, data)
	addOfferLinesTable(m, data)
	addOfferTotals(m, data)
	addOfferTerms(m, data)
	addOfferSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate offer PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addOfferHeader adds the project name, document title and offer code.
func addOfferHeader(m core.Maroto, data *OfferExportData) {
	// Row 1: Project name (left) + document title (right)
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.ProjectName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	// Row 2: date (left) + offer code (right)
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Offer #: %s", data.OfferCode), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addOfferCustomerBlock adds the customer details block.
func addOfferCustomerBlock(m core.Maroto, data *OfferExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("CUSTOMER", labelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.Customer.Name, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	if data.Customer.Address != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(data.Customer.Address, valueStyle)),
			),
		)
	}

	contactParts := []string{}
	if data.AttentionTo != "" {
		contactParts = append(contactParts, "Attn: "+data.AttentionTo)
	}
	if data.Customer.Phone != "" {
		contactParts = append(contactParts, data.Customer.Phone)
	}
	if data.Customer.Email != "" {
		contactParts = append(contactParts, data.Customer.Email)
	}
	if len(contactParts) > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(joinNonEmpty(contactParts, " | "), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addOfferLinesTable adds the offer lines table with header and body rows.
func addOfferLinesTable(m core.Maroto, data *OfferExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	// Table header
	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("SI No", headerText)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)

	// Table body with alternating backgrounds
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, l := range data.Lines {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText))
		colDesc := col.New(6).Add(text.New(l.Description, bodyTextLeft))
		colQty := col.New(1).Add(text.New(formatQty(l.Qty), bodyTextRight))
		colPrice := col.New(2).Add(text.New(FormatMoney(l.UnitPrice), bodyTextRight))
		colSubtotal := col.New(2).Add(text.New(FormatMoney(l.Subtotal()), bodyTextRight))

		if cellStyle != nil {
			colSINo = colSINo.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colSubtotal = colSubtotal.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colSINo, colDesc, colQty, colPrice, colSubtotal),
		)
	}

	m.AddRows(row.New(2))
}

// addOfferTotals adds the right-aligned grand total row.
func addOfferTotals(m core.Maroto, data *OfferExportData) {
	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandLabelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	grandValueStyle := grandLabelStyle

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandLabelStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatMoney(data.GrandTotal), grandValueStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addOfferTerms adds the commercial terms sections.
func addOfferTerms(m core.Maroto, data *OfferExportData) {
	t := data.Terms
	hasTerms := t.Includes != "" || t.Excludes != "" || t.PaymentTerms != "" ||
		t.ExecutionTime != "" || t.Warranty != "" || t.AdditionalNotes != "" ||
		t.ValidityDays > 0
	if !hasTerms {
		return
	}

	sectionLabel := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 37, Blue: 41},
	}
	termLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	termValue := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("TERMS & CONDITIONS", sectionLabel)),
		),
	)

	termsRows := []struct{ label, value string }{
		{"Offer Includes", t.Includes},
		{"Offer Excludes", t.Excludes},
		{"Payment Terms", t.PaymentTerms},
		{"Execution Time", t.ExecutionTime},
		{"Warranty", t.Warranty},
		{"Notes", t.AdditionalNotes},
	}
	for _, tr := range termsRows {
		if tr.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New(tr.label, termLabel))),
		)
		m.AddRows(
			row.New(7).Add(col.New(12).Add(text.New(tr.value, termValue))),
		)
	}

	if t.ValidityDays > 0 {
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New("Validity", termLabel))),
		)
		m.AddRows(
			row.New(7).Add(col.New(12).Add(text.New(fmt.Sprintf("%d days from the offer date", t.ValidityDays), termValue))),
		)
	}

	m.AddRows(row.New(3))
}

// addOfferSignatures adds the signature section at the bottom.
func addOfferSignatures(m core.Maroto) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Customer Signature", labelStyle)),
			col.New(6).Add(text.New("Authorized Signatory", labelStyle)),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var result string
	for _, p := range parts {
		if p == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += p
	}
	return result
}

// formatQty renders a quantity without trailing decimal noise: whole numbers
// bare, fractional quantities with two decimals.
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
