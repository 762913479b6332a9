package renderer

import (
	"bytes"
	"fmt"

	"github.com/anupamd/kitestat"
	md "github.com/nao1215/markdown"
)

// Mode selects which sections of the detailed view to render.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeFunds     Mode = "funds"
	ModeHoldings  Mode = "holdings"
	ModePositions Mode = "positions"
)

var holdingHeaders = []string{"Symbol", "Exch", "Qty", "Avg", "LTP", "Invested", "Value", "PnL", "PnL %", "Day Change"}
var positionHeaders = []string{"Prod", "Symbol", "Exch", "Qty", "Avg", "LTP", "M2M"}

// DetailedMarkdown renders the table view for the selected mode.
// Holdings rows are rendered in the order they carry; sort them with
// kitestat.SortHoldings beforehand. The table cells are exactly the CSV
// record fields, so what is displayed is what gets exported.
func DetailedMarkdown(r *kitestat.Report, mode Mode) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Kite Portfolio Status @ %s IST", kitestat.Stamp(r.Time)))

	if mode == ModeAll || mode == ModeFunds {
		doc.H2("Funds (Equity)")
		doc.BulletList(
			"Available cash: "+kitestat.Rupee(r.Funds.AvailableCash),
			"Utilised (debits): "+kitestat.Rupee(r.Funds.UtilisedDebits),
		)
	}

	if mode == ModeAll || mode == ModeHoldings {
		doc.H2("Holdings")
		holdingTable(doc, r.Holdings)
		doc.BulletList(
			"Total Invested: "+kitestat.Rupee(r.HoldingTotals.Invested),
			"Current Value: "+kitestat.Rupee(r.HoldingTotals.Value),
			fmt.Sprintf("Unrealized PnL: %s (%s%%)", kitestat.Rupee(r.HoldingTotals.PnL), r.HoldingTotals.PnLPct.StringFixed(2)),
			"Day's Change: "+moneyWithPct(r.HoldingTotals.DayChange, r.DayChangePct()),
		)
	}

	if mode == ModeAll || mode == ModePositions {
		// the day and the net book always render separately, each with
		// its own total
		doc.H2("Positions (Day)")
		positionTable(doc, r.DayPositions)
		doc.BulletList("Total Day M2M: " + kitestat.Rupee(r.DayM2M))

		doc.H2("Positions (Net)")
		positionTable(doc, r.NetPositions)
		doc.BulletList("Total Net M2M: " + kitestat.Rupee(r.NetM2M))
	}

	return doc.String()
}

func holdingTable(doc *md.Markdown, rows []kitestat.HoldingRow) {
	if len(rows) == 0 {
		doc.PlainText("(none)")
		return
	}
	table := md.TableSet{Header: holdingHeaders}
	for _, r := range rows {
		table.Rows = append(table.Rows, r.Record())
	}
	doc.Table(table)
}

func positionTable(doc *md.Markdown, rows []kitestat.PositionRow) {
	if len(rows) == 0 {
		doc.PlainText("(none)")
		return
	}
	table := md.TableSet{Header: positionHeaders}
	for _, r := range rows {
		table.Rows = append(table.Rows, r.Record())
	}
	doc.Table(table)
}
