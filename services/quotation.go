package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ErrMissingCustomer is returned when a quotation is requested for a
// project that has no customer assigned. This is the only project
// operation that refuses to proceed; everything else computes on whatever
// inputs exist.
var ErrMissingCustomer = errors.New("project has no customer")

// QuoteLine is one row of a generated quotation, ready for persistence or
// document export.
type QuoteLine struct {
	Description string
	Qty         float64
	UnitPrice   float64
}

// Subtotal prices the line.
func (l QuoteLine) Subtotal() float64 {
	return CalcLineSubtotal(l.Qty, l.UnitPrice)
}

func quoteQty(qty float64) float64 {
	if qty == 0 {
		return 1
	}
	return qty
}

func discountLine(label string, subtotal, discountPercent float64) (QuoteLine, bool) {
	if discountPercent == 0 || subtotal == 0 {
		return QuoteLine{}, false
	}
	return QuoteLine{
		Description: fmt.Sprintf("%s Discount (%.0f%%)", label, discountPercent),
		Qty:         1,
		UnitPrice:   -(subtotal - ApplyDiscount(subtotal, discountPercent)),
	}, true
}

// BuildHeatingQuoteLines flattens a computed heating project into quotation
// rows: boiler, then per-space radiators/UFH/thermostats, then piping lines,
// with discounts as negative adjustment rows. The sum of the rows equals the
// project grand total.
func BuildHeatingQuoteLines(p *HeatingProject) []QuoteLine {
	var lines []QuoteLine

	if b := p.Boiler.Final(); b != nil {
		lines = append(lines, QuoteLine{
			Description: fmt.Sprintf("%s (%.0f kW)", b.Name, b.Capacity),
			Qty:         float64(orDefaultInt(p.BoilerQty, 1)),
			UnitPrice:   b.Price,
		})
	}

	for i := range p.Spaces {
		sp := &p.Spaces[i]
		switch sp.SystemType {
		case SystemRadiator:
			if r := sp.Radiator.Final(); r != nil {
				lines = append(lines, QuoteLine{
					Description: fmt.Sprintf("%s - %s", r.Name, sp.RoomName),
					Qty:         float64(orDefaultInt(sp.RadiatorQty, 1)),
					UnitPrice:   r.Price,
				})
			}
		case SystemUFH:
			lines = append(lines, QuoteLine{
				Description: fmt.Sprintf("Under Floor Heating - %s", sp.RoomName),
				Qty:         sp.Area,
				UnitPrice:   orDefault(sp.UFHPricePerSqm, defaultUFHPricePerSqm),
			})
			if sp.ThermostatQty > 0 {
				lines = append(lines, QuoteLine{
					Description: fmt.Sprintf("Room Thermostat - %s", sp.RoomName),
					Qty:         float64(sp.ThermostatQty),
					UnitPrice:   orDefault(sp.ThermostatPrice, defaultThermostatPrice),
				})
			}
		}
	}

	if l, ok := discountLine("Equipment", p.EquipmentSubtotal, p.EquipmentDiscount); ok {
		lines = append(lines, l)
	}

	for i := range p.PipingLines {
		pl := &p.PipingLines[i]
		lines = append(lines, QuoteLine{
			Description: pl.Description,
			Qty:         quoteQty(pl.Qty),
			UnitPrice:   pl.UnitPrice,
		})
	}

	if l, ok := discountLine("Piping", p.PipingTotal, p.PipingDiscount); ok {
		lines = append(lines, l)
	}

	return lines
}

// BuildCoolingQuoteLines flattens a computed cooling project into quotation
// rows: chiller, AHUs, per-room FCUs and thermostats, duct lines, with
// discounts as negative adjustment rows.
func BuildCoolingQuoteLines(p *CoolingProject) []QuoteLine {
	var lines []QuoteLine

	if c := p.Chiller.Final(); c != nil {
		lines = append(lines, QuoteLine{
			Description: fmt.Sprintf("%s (%.1f TR)", c.Name, KwToTons(c.Capacity)),
			Qty:         float64(orDefaultInt(p.ChillerQty, 1)),
			UnitPrice:   c.Price,
		})
	}

	for i := range p.AHUs {
		a := &p.AHUs[i]
		lines = append(lines, QuoteLine{
			Description: fmt.Sprintf("%s (%.0f CFM)", a.Name, a.Capacity),
			Qty:         1,
			UnitPrice:   a.Price,
		})
	}

	for i := range p.Spaces {
		sp := &p.Spaces[i]
		if sp.SystemType != SystemFCU {
			continue
		}
		if f := sp.FCU.Final(); f != nil {
			lines = append(lines, QuoteLine{
				Description: fmt.Sprintf("%s - %s", f.Name, sp.RoomName),
				Qty:         float64(orDefaultInt(sp.FCUQty, 1)),
				UnitPrice:   f.Price,
			})
		}
		if sp.ThermostatQty > 0 {
			lines = append(lines, QuoteLine{
				Description: fmt.Sprintf("Thermostat - %s", sp.RoomName),
				Qty:         float64(sp.ThermostatQty),
				UnitPrice:   orDefault(sp.ThermostatPrice, defaultCoolingThermostatPrice),
			})
		}
	}

	if l, ok := discountLine("Equipment", p.EquipmentSubtotal, p.EquipmentDiscount); ok {
		lines = append(lines, l)
	}

	for i := range p.DuctLines {
		dl := &p.DuctLines[i]
		lines = append(lines, QuoteLine{
			Description: dl.Description,
			Qty:         quoteQty(dl.Qty),
			UnitPrice:   dl.UnitPrice,
		})
	}

	if l, ok := discountLine("Ductwork", p.DuctworkTotal, p.DuctworkDiscount); ok {
		lines = append(lines, l)
	}

	return lines
}

// BuildHotWaterQuoteLines flattens a computed hot water project into
// quotation rows: per-point heaters, pool heaters, additional equipment
// lines, with the discount as a negative adjustment row.
func BuildHotWaterQuoteLines(p *HotWaterProject) []QuoteLine {
	var lines []QuoteLine

	for i := range p.Spaces {
		sp := &p.Spaces[i]

		if h := sp.Heater.Final(); h != nil {
			label := sp.Name
			if label == "" {
				label = sp.SpaceType
			}
			lines = append(lines, QuoteLine{
				Description: fmt.Sprintf("%s - %s", h.Name, label),
				Qty:         float64(orDefaultInt(sp.HeaterQty, 1)),
				UnitPrice:   h.Price,
			})
		}

		if ph := sp.PoolHeater.Final(); ph != nil {
			label := sp.Name
			if label == "" {
				label = "Pool"
			}
			lines = append(lines, QuoteLine{
				Description: fmt.Sprintf("%s - %s", ph.Name, label),
				Qty:         1,
				UnitPrice:   ph.Price,
			})
		}
	}

	for i := range p.EquipmentLines {
		el := &p.EquipmentLines[i]
		lines = append(lines, QuoteLine{
			Description: el.Description,
			Qty:         quoteQty(el.Qty),
			UnitPrice:   el.UnitPrice,
		})
	}

	if l, ok := discountLine("Equipment", p.EquipmentSubtotal, p.EquipmentDiscount); ok {
		lines = append(lines, l)
	}

	return lines
}

// CreateQuotation persists a quotation record with its lines. origin is the
// offer code of the source project. Returns ErrMissingCustomer when the
// customer is not set.
func CreateQuotation(app *pocketbase.PocketBase, customerID, origin string, lines []QuoteLine) (*core.Record, error) {
	if customerID == "" {
		return nil, ErrMissingCustomer
	}

	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return nil, fmt.Errorf("find quotations collection: %w", err)
	}
	linesCol, err := app.FindCollectionByNameOrId("quotation_lines")
	if err != nil {
		return nil, fmt.Errorf("find quotation_lines collection: %w", err)
	}

	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}

	quotation := core.NewRecord(quotationsCol)
	quotation.Set("customer", customerID)
	quotation.Set("origin", origin)
	quotation.Set("total", total)
	if err := app.Save(quotation); err != nil {
		return nil, fmt.Errorf("save quotation: %w", err)
	}

	for i, l := range lines {
		lr := core.NewRecord(linesCol)
		lr.Set("quotation", quotation.Id)
		lr.Set("sort_order", (i+1)*10)
		lr.Set("description", l.Description)
		lr.Set("quantity", l.Qty)
		lr.Set("unit_price", l.UnitPrice)
		lr.Set("subtotal", l.Subtotal())
		if err := app.Save(lr); err != nil {
			return nil, fmt.Errorf("save quotation line %d: %w", i+1, err)
		}
	}

	return quotation, nil
}

// ensureProjectOfferCode assigns and persists the project's offer code if
// it has none yet, and returns the code either way.
func ensureProjectOfferCode(app *pocketbase.PocketBase, collection, projectID, prefix string) (string, error) {
	record, err := app.FindRecordById(collection, projectID)
	if err != nil {
		return "", fmt.Errorf("reload project %s: %w", projectID, err)
	}
	if code := record.GetString("offer_code"); code != "" {
		return code, nil
	}
	if err := EnsureOfferCode(app, record, prefix, time.Now()); err != nil {
		return "", err
	}
	if err := app.Save(record); err != nil {
		return "", fmt.Errorf("save offer code for project %s: %w", projectID, err)
	}
	return record.GetString("offer_code"), nil
}

// linkQuotation attaches a quotation to its source project and moves the
// project to the quoted state.
func linkQuotation(app *pocketbase.PocketBase, collection, projectID, quotationID string) error {
	record, err := app.FindRecordById(collection, projectID)
	if err != nil {
		return fmt.Errorf("reload project %s: %w", projectID, err)
	}
	record.Set("quotation", quotationID)
	record.Set("state", "quoted")
	if err := app.Save(record); err != nil {
		return fmt.Errorf("link quotation to project %s: %w", projectID, err)
	}
	return nil
}

// CreateHeatingQuotation recomputes a heating project, assigns its offer
// code if missing, and generates a linked quotation from the result.
func CreateHeatingQuotation(app *pocketbase.PocketBase, e *HeatingEngine, projectID string) (*core.Record, error) {
	p, err := RecomputeHeatingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	if p.CustomerID == "" {
		return nil, ErrMissingCustomer
	}
	code, err := ensureProjectOfferCode(app, "heating_projects", projectID, HeatingOfferPrefix)
	if err != nil {
		return nil, err
	}
	quotation, err := CreateQuotation(app, p.CustomerID, code, BuildHeatingQuoteLines(p))
	if err != nil {
		return nil, err
	}
	if err := linkQuotation(app, "heating_projects", projectID, quotation.Id); err != nil {
		return nil, err
	}
	return quotation, nil
}

// CreateCoolingQuotation recomputes a cooling project and generates a
// linked quotation from the result.
func CreateCoolingQuotation(app *pocketbase.PocketBase, e *CoolingEngine, projectID string) (*core.Record, error) {
	p, err := RecomputeCoolingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	if p.CustomerID == "" {
		return nil, ErrMissingCustomer
	}
	code, err := ensureProjectOfferCode(app, "cooling_projects", projectID, CoolingOfferPrefix)
	if err != nil {
		return nil, err
	}
	quotation, err := CreateQuotation(app, p.CustomerID, code, BuildCoolingQuoteLines(p))
	if err != nil {
		return nil, err
	}
	if err := linkQuotation(app, "cooling_projects", projectID, quotation.Id); err != nil {
		return nil, err
	}
	return quotation, nil
}

// CreateHotWaterQuotation recomputes a hot water project and generates a
// linked quotation from the result.
func CreateHotWaterQuotation(app *pocketbase.PocketBase, e *HotWaterEngine, projectID string) (*core.Record, error) {
	p, err := RecomputeHotWaterProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	if p.CustomerID == "" {
		return nil, ErrMissingCustomer
	}
	code, err := ensureProjectOfferCode(app, "hotwater_projects", projectID, HotWaterOfferPrefix)
	if err != nil {
		return nil, err
	}
	quotation, err := CreateQuotation(app, p.CustomerID, code, BuildHotWaterQuoteLines(p))
	if err != nil {
		return nil, err
	}
	if err := linkQuotation(app, "hotwater_projects", projectID, quotation.Id); err != nil {
		return nil, err
	}
	return quotation, nil
}
