package services

import (
	"testing"

	"jobcard-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(dec("12.50"), dec("3"))
	if got == nil || !got.Equal(decimal.RequireFromString("37.50")) {
		t.Fatalf("LineTotal(12.50, 3): got %v, want 37.50", got)
	}

	if LineTotal(nil, dec("3")) != nil {
		t.Fatalf("LineTotal with nil price should be nil")
	}
	if LineTotal(dec("12.50"), nil) != nil {
		t.Fatalf("LineTotal with nil qty should be nil")
	}
	if LineTotal(dec("-1"), dec("3")) != nil {
		t.Fatalf("LineTotal with negative price should be nil")
	}
}

func TestRecomputePartsDocument(t *testing.T) {
	stale := decimal.RequireFromString("999.99")
	doc := models.PartsDocument{
		Lines: []models.PartLine{
			{Name: "Oil filter", Price: dec("10.00"), QtyUsed: dec("2"), TotalCost: &stale},
			{Name: "Air filter", Price: dec("25.00"), QtyUsed: nil},
		},
		Total: decimal.RequireFromString("123.45"),
	}

	RecomputePartsDocument(&doc)

	if doc.Lines[0].TotalCost == nil || !doc.Lines[0].TotalCost.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("line 0 total: got %v, want 20.00", doc.Lines[0].TotalCost)
	}
	if doc.Lines[1].TotalCost != nil {
		t.Fatalf("line 1 total should be nil when qty is missing, got %v", doc.Lines[1].TotalCost)
	}
	if !doc.Total.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("document total: got %s, want 20.00", doc.Total)
	}
}

func TestRecomputeTotalsGrandTotal(t *testing.T) {
	jc := &models.JobCard{
		TotalA: decimal.RequireFromString("50.00"),
		PartsAndConsumables: datatypes.NewJSONType(models.PartsDocument{
			Lines: []models.PartLine{
				{Name: "Brake pads", Price: dec("10.00"), QtyUsed: dec("2")},
			},
		}),
		LubricantsUsed: datatypes.NewJSONType(models.LubricantsDocument{
			Lines: []models.LubricantLine{
				{Name: "Engine oil", CostPerLitre: dec("5.00"), Qty: dec("4")},
			},
		}),
	}

	RecomputeTotals(jc)

	if !jc.TotalB.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("total_b: got %s, want 20.00", jc.TotalB)
	}
	if !jc.TotalC.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("total_c: got %s, want 20.00", jc.TotalC)
	}
	if !jc.GrandTotal.Equal(decimal.RequireFromString("90.00")) {
		t.Fatalf("grand_total: got %s, want 90.00", jc.GrandTotal)
	}
}

func TestRecomputeTotalsIsIdempotent(t *testing.T) {
	jc := &models.JobCard{
		TotalA: decimal.RequireFromString("15.75"),
		PartsAndConsumables: datatypes.NewJSONType(models.PartsDocument{
			Lines: []models.PartLine{
				{Name: "Fan belt", Price: dec("33.33"), QtyUsed: dec("3")},
			},
		}),
	}

	RecomputeTotals(jc)
	first := jc.GrandTotal
	RecomputeTotals(jc)

	if !jc.GrandTotal.Equal(first) {
		t.Fatalf("grand_total changed on recompute: %s then %s", first, jc.GrandTotal)
	}
	if !jc.GrandTotal.Equal(jc.TotalA.Add(jc.TotalB).Add(jc.TotalC)) {
		t.Fatalf("grand_total %s does not equal a+b+c", jc.GrandTotal)
	}
}

func TestRecomputeTotalsEmptyDocuments(t *testing.T) {
	jc := &models.JobCard{}
	RecomputeTotals(jc)

	if !jc.GrandTotal.Equal(decimal.Zero) {
		t.Fatalf("grand_total on empty card: got %s, want 0", jc.GrandTotal)
	}
}
