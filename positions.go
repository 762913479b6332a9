package kitestat

import "github.com/shopspring/decimal"

// PositionRow is one computed position line from either the day or the
// net book.
type PositionRow struct {
	Product      string
	Symbol       string
	Exchange     string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	LastPrice    decimal.Decimal
	M2M          decimal.Decimal // (last - average) * quantity
}

// SummarizePositions computes the mark-to-market of each position and
// the book total. The day and the net book are summarized by separate,
// fully independent calls; they are never merged.
func SummarizePositions(positions []Position) ([]PositionRow, decimal.Decimal) {
	rows := make([]PositionRow, 0, len(positions))
	total := decimal.Zero

	for _, p := range positions {
		m2m := p.LastPrice.Sub(p.AveragePrice).Mul(p.Quantity)
		total = total.Add(m2m)

		rows = append(rows, PositionRow{
			Product:      p.Product,
			Symbol:       p.Symbol,
			Exchange:     p.Exchange,
			Quantity:     p.Quantity,
			AveragePrice: Quantize(p.AveragePrice, 2),
			LastPrice:    Quantize(p.LastPrice, 2),
			M2M:          Quantize(m2m, 2),
		})
	}

	return rows, Quantize(total, 2)
}
