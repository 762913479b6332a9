package kitestat

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SortField selects the holdings column used to order the detailed
// view.
type SortField string

const (
	SortSymbol    SortField = "symbol"
	SortQuantity  SortField = "quantity"
	SortLTP       SortField = "ltp"
	SortInvested  SortField = "invested"
	SortValue     SortField = "value"
	SortPnL       SortField = "pnl"
	SortPnLPct    SortField = "pnl_pct"
	SortDayChange SortField = "day_change"
)

// SortOrder is the direction of a holdings sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// comparators maps each known sort field to its comparison. Symbol
// compares lexicographically, everything else numerically. An unknown
// field has no entry, which leaves the row order unchanged.
var comparators = map[SortField]func(a, b HoldingRow) int{
	SortSymbol:    func(a, b HoldingRow) int { return strings.Compare(a.Symbol, b.Symbol) },
	SortQuantity:  func(a, b HoldingRow) int { return a.Quantity.Cmp(b.Quantity) },
	SortLTP:       func(a, b HoldingRow) int { return a.LastPrice.Cmp(b.LastPrice) },
	SortInvested:  func(a, b HoldingRow) int { return a.Invested.Cmp(b.Invested) },
	SortValue:     func(a, b HoldingRow) int { return a.Value.Cmp(b.Value) },
	SortPnL:       func(a, b HoldingRow) int { return a.PnL.Cmp(b.PnL) },
	SortPnLPct:    func(a, b HoldingRow) int { return a.PnLPct.Cmp(b.PnLPct) },
	SortDayChange: func(a, b HoldingRow) int { return a.DayChange.Cmp(b.DayChange) },
}

// SortHoldings orders rows in place by the given field and order. An
// unknown field is a no-op, not an error.
func SortHoldings(rows []HoldingRow, field SortField, order SortOrder) {
	cmp, ok := comparators[field]
	if !ok {
		return
	}
	slices.SortStableFunc(rows, func(a, b HoldingRow) int {
		if order == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}

// Trend is the 3-way direction of a value.
type Trend int

const (
	Flat Trend = iota
	Up
	Down
)

// TrendOf classifies v: positive is up, negative is down, zero is flat.
func TrendOf(v decimal.Decimal) Trend {
	switch v.Sign() {
	case 1:
		return Up
	case -1:
		return Down
	default:
		return Flat
	}
}

// Glyph returns the arrow used to render the trend.
func (t Trend) Glyph() string {
	switch t {
	case Up:
		return "↗"
	case Down:
		return "↘"
	default:
		return "→"
	}
}

// Report is one fully aggregated portfolio snapshot, ready to render or
// export. It holds no live state: build it, render it, drop it.
// Concurrent report generations must each build their own.
type Report struct {
	Time time.Time

	Holdings      []HoldingRow
	HoldingTotals HoldingTotals

	DayPositions []PositionRow
	DayM2M       decimal.Decimal

	NetPositions []PositionRow
	NetM2M       decimal.Decimal

	Funds Funds
}

// NewReport aggregates raw account data into a report. The three row
// sets are aggregated independently and never merged.
func NewReport(holdings []Holding, day, net []Position, funds Funds) *Report {
	r := &Report{Time: time.Now(), Funds: funds}
	r.Holdings, r.HoldingTotals = SummarizeHoldings(holdings)
	r.DayPositions, r.DayM2M = SummarizePositions(day)
	r.NetPositions, r.NetM2M = SummarizePositions(net)
	return r
}

// TotalPnL combines unrealized holdings P&L with the carried (net)
// positions M2M. Day M2M is reported on its own line and deliberately
// left out of this total.
func (r *Report) TotalPnL() decimal.Decimal {
	return r.HoldingTotals.PnL.Add(r.NetM2M)
}

// TotalPnLPct is the total P&L relative to the invested amount.
func (r *Report) TotalPnLPct() decimal.Decimal {
	return Percentage(r.TotalPnL(), r.HoldingTotals.Invested)
}

// DayChangePct is the holdings day change relative to market value.
func (r *Report) DayChangePct() decimal.Decimal {
	return Percentage(r.HoldingTotals.DayChange, r.HoldingTotals.Value)
}

// DayM2MPct is the day-trading M2M relative to holdings market value.
func (r *Report) DayM2MPct() decimal.Decimal {
	return Percentage(r.DayM2M, r.HoldingTotals.Value)
}

// NetM2MPct is the net-positions M2M relative to holdings market value.
func (r *Report) NetM2MPct() decimal.Decimal {
	return Percentage(r.NetM2M, r.HoldingTotals.Value)
}

// TopGainers returns up to 3 holdings with a positive P&L%, best first.
func (r *Report) TopGainers() []HoldingRow {
	byPct := r.byPnLPctDesc()
	gainers := make([]HoldingRow, 0, 3)
	for _, h := range byPct {
		if !h.PnLPct.IsPositive() {
			break
		}
		gainers = append(gainers, h)
		if len(gainers) == 3 {
			break
		}
	}
	return gainers
}

// TopLosers returns up to 3 holdings with a negative P&L%, worst first.
func (r *Report) TopLosers() []HoldingRow {
	byPct := r.byPnLPctDesc()
	var negatives []HoldingRow
	for _, h := range byPct {
		if h.PnLPct.IsNegative() {
			negatives = append(negatives, h)
		}
	}
	// the tail of the descending order holds the worst performers
	if len(negatives) > 3 {
		negatives = negatives[len(negatives)-3:]
	}
	slices.Reverse(negatives)
	return negatives
}

// byPnLPctDesc returns a copy of the holdings sorted by P&L%
// descending, leaving the report untouched.
func (r *Report) byPnLPctDesc() []HoldingRow {
	rows := slices.Clone(r.Holdings)
	SortHoldings(rows, SortPnLPct, Descending)
	return rows
}
