package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/crylonblue/blitzrechnung/internal/model"
	"github.com/crylonblue/blitzrechnung/internal/money"
)

// DefaultVATRate is the standard German VAT rate, used as the
// document-level fallback for lines without an explicit rate.
var DefaultVATRate = money.FromInt(19)

// DefaultUnit is used when a line item carries no unit
const DefaultUnit = "piece"

// NormalizeResult holds normalized lines plus the derived
// document-level tax rate.
type NormalizeResult struct {
	Items           []model.RenderableLineItem
	DocumentTaxRate decimal.Decimal
}

// Normalize fills defaults on each line and derives the document tax
// rate. The rate of the first line wins when explicitly set; 0 counts
// as set, only a nil rate falls back to DefaultVATRate. The fallback
// exists for legacy single-rate invoices and is never forced onto
// lines that specify their own rate. Quantity and unit price pass
// through verbatim. The input slice is not mutated.
func Normalize(items []model.LineItem) NormalizeResult {
	docRate := DefaultVATRate
	if len(items) > 0 && items[0].VATRate != nil {
		docRate = *items[0].VATRate
	}

	normalized := make([]model.RenderableLineItem, 0, len(items))
	for _, item := range items {
		rate := docRate
		if item.VATRate != nil {
			rate = *item.VATRate
		}

		unit := item.Unit
		if unit == "" {
			unit = DefaultUnit
		}

		// A persisted line total wins over the derived product, so
		// historical rounding decisions never drift.
		var total decimal.Decimal
		if item.Total != nil {
			total = *item.Total
		} else {
			total = money.Mul(item.Quantity, item.UnitPrice)
		}

		normalized = append(normalized, model.RenderableLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        unit,
			UnitPrice:   item.UnitPrice,
			VATRate:     rate,
			Total:       total,
		})
	}

	return NormalizeResult{
		Items:           normalized,
		DocumentTaxRate: docRate,
	}
}

// DocumentTotals aggregates normalized lines into net subtotal, VAT
// amount, and gross total, each rounded to cents.
func DocumentTotals(items []model.RenderableLineItem) (subtotal, vat, total decimal.Decimal) {
	nets := make([]decimal.Decimal, 0, len(items))
	vats := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		nets = append(nets, item.Total)
		vats = append(vats, money.CalculateVAT(item.Total, item.VATRate))
	}

	subtotal = money.RoundEUR(money.Sum(nets))
	vat = money.RoundEUR(money.Sum(vats))
	total = money.RoundEUR(subtotal.Add(vat))
	return subtotal, vat, total
}
