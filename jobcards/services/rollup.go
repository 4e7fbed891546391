package services

import (
	"jobcard-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LineTotal computes price * qty for a line item. Returns nil when either
// factor is missing or negative; a nil total contributes zero to the rollup.
func LineTotal(price, qty *decimal.Decimal) *decimal.Decimal {
	if price == nil || qty == nil {
		return nil
	}
	if price.IsNegative() || qty.IsNegative() {
		return nil
	}
	total := price.Mul(*qty).Round(2)
	return &total
}

// RecomputePartsDocument rewrites every line's total_cost from its factors
// and the document total from the lines. Safe to call repeatedly.
func RecomputePartsDocument(doc *models.PartsDocument) {
	sum := decimal.Zero
	for i := range doc.Lines {
		doc.Lines[i].TotalCost = LineTotal(doc.Lines[i].Price, doc.Lines[i].QtyUsed)
		if doc.Lines[i].TotalCost != nil {
			sum = sum.Add(*doc.Lines[i].TotalCost)
		}
	}
	doc.Total = sum
}

// RecomputeLubricantsDocument does the same over lubricant lines.
func RecomputeLubricantsDocument(doc *models.LubricantsDocument) {
	sum := decimal.Zero
	for i := range doc.Lines {
		doc.Lines[i].TotalCost = LineTotal(doc.Lines[i].CostPerLitre, doc.Lines[i].Qty)
		if doc.Lines[i].TotalCost != nil {
			sum = sum.Add(*doc.Lines[i].TotalCost)
		}
	}
	doc.Total = sum
}

// RecomputeTotals re-derives total_b and total_c from the line-item documents
// and rewrites grand_total = total_a + total_b + total_c. total_a is the
// manually entered labor figure and is left as is. Called on every write that
// can touch a contributing field; client-supplied derived totals are never
// trusted.
func RecomputeTotals(jc *models.JobCard) {
	parts := jc.PartsAndConsumables.Data()
	RecomputePartsDocument(&parts)
	jc.PartsAndConsumables = datatypes.NewJSONType(parts)
	jc.TotalB = parts.Total

	lubricants := jc.LubricantsUsed.Data()
	RecomputeLubricantsDocument(&lubricants)
	jc.LubricantsUsed = datatypes.NewJSONType(lubricants)
	jc.TotalC = lubricants.Total

	jc.TotalA = jc.TotalA.Round(2)
	jc.GrandTotal = jc.TotalA.Add(jc.TotalB).Add(jc.TotalC)
}
