package kitestat

import "github.com/shopspring/decimal"

// HoldingRow is one computed holdings line. The field order is also the
// canonical CSV column order, see csv.go.
type HoldingRow struct {
	Symbol       string
	Exchange     string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	LastPrice    decimal.Decimal
	Invested     decimal.Decimal // quantity * average price
	Value        decimal.Decimal // quantity * last price
	PnL          decimal.Decimal // value - invested
	PnLPct       decimal.Decimal // pnl / invested, 0 when invested is 0
	DayChange    decimal.Decimal // per-unit day change * quantity
}

// HoldingTotals aggregates one holdings book.
type HoldingTotals struct {
	Invested  decimal.Decimal
	Value     decimal.Decimal
	PnL       decimal.Decimal
	PnLPct    decimal.Decimal
	DayChange decimal.Decimal
}

// SummarizeHoldings computes valuation and unrealized P&L for each
// holding plus the book totals. Rows keep their input order, sorting
// belongs to the report. The pass never fails: a degraded record simply
// contributes zeros.
func SummarizeHoldings(holdings []Holding) ([]HoldingRow, HoldingTotals) {
	rows := make([]HoldingRow, 0, len(holdings))
	var t HoldingTotals

	for _, h := range holdings {
		invested := h.Quantity.Mul(h.AveragePrice)
		value := h.Quantity.Mul(h.LastPrice)
		pnl := value.Sub(invested)
		dayChange := h.DayChange.Mul(h.Quantity)

		t.Invested = t.Invested.Add(invested)
		t.Value = t.Value.Add(value)
		t.PnL = t.PnL.Add(pnl)
		t.DayChange = t.DayChange.Add(dayChange)

		rows = append(rows, HoldingRow{
			Symbol:       h.Symbol,
			Exchange:     h.Exchange,
			Quantity:     h.Quantity,
			AveragePrice: Quantize(h.AveragePrice, 2),
			LastPrice:    Quantize(h.LastPrice, 2),
			Invested:     Quantize(invested, 2),
			Value:        Quantize(value, 2),
			PnL:          Quantize(pnl, 2),
			PnLPct:       Percentage(pnl, invested),
			DayChange:    Quantize(dayChange, 2),
		})
	}

	t.PnLPct = Percentage(t.PnL, t.Invested)
	t.Invested = Quantize(t.Invested, 2)
	t.Value = Quantize(t.Value, 2)
	t.PnL = Quantize(t.PnL, 2)
	t.DayChange = Quantize(t.DayChange, 2)
	return rows, t
}
