// Package renderer turns an aggregated report into markdown, ready for
// the terminal or any markdown sink.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/anupamd/kitestat"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the one-screen portfolio summary: overview,
// trading performance, top movers and funds.
func SummaryMarkdown(r *kitestat.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Kite Portfolio Status @ %s IST", kitestat.Stamp(r.Time)))

	doc.H2("Today's Performance")
	doc.BulletList(
		"Portfolio Value: "+kitestat.Rupee(r.HoldingTotals.Value),
		"Total Invested: "+kitestat.Rupee(r.HoldingTotals.Invested),
		"Holdings P&L: "+moneyWithPct(r.HoldingTotals.PnL, r.HoldingTotals.PnLPct),
	)

	doc.H2("Trading Performance")
	lines := []string{
		"Holdings Day Change: " + moneyWithPct(r.HoldingTotals.DayChange, r.DayChangePct()),
	}
	// a zero book contributes no line at all
	if !r.DayM2M.IsZero() {
		lines = append(lines, "Positions Day Trading: "+moneyWithPct(r.DayM2M, r.DayM2MPct()))
	}
	if !r.NetM2M.IsZero() {
		lines = append(lines, "Net Positions P&L: "+moneyWithPct(r.NetM2M, r.NetM2MPct()))
	}
	lines = append(lines, "Total P&L: "+moneyWithPct(r.TotalPnL(), r.TotalPnLPct()))
	doc.BulletList(lines...)

	if gainers := r.TopGainers(); len(gainers) > 0 {
		doc.H2("Top Gainers")
		doc.BulletList(moverLines(gainers)...)
	}
	if losers := r.TopLosers(); len(losers) > 0 {
		doc.H2("Top Losers")
		doc.BulletList(moverLines(losers)...)
	}

	doc.H2("Funds")
	doc.BulletList(
		"Available Cash: "+kitestat.Rupee(r.Funds.AvailableCash),
		"Utilised: "+kitestat.Rupee(r.Funds.UtilisedDebits),
	)

	return doc.String()
}

// moneyWithPct renders "₹1,500.00 (↗ 5.00%)".
func moneyWithPct(amount, pct decimal.Decimal) string {
	return fmt.Sprintf("%s (%s %s%%)", kitestat.Rupee(amount), kitestat.TrendOf(amount).Glyph(), pct.StringFixed(2))
}

func moverLines(rows []kitestat.HoldingRow) []string {
	lines := make([]string, 0, len(rows))
	for _, h := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s", h.Symbol, moneyWithPct(h.PnL, h.PnLPct)))
	}
	return lines
}
