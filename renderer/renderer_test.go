package renderer

import (
	"strings"
	"testing"

	"github.com/anupamd/kitestat"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummaryMarkdown(t *testing.T) {
	r := kitestat.NewReport(
		[]kitestat.Holding{
			{Symbol: "TCS", Quantity: dec("10"), AveragePrice: dec("3000"), LastPrice: dec("3150"), DayChange: dec("5")},
			{Symbol: "INFY", Quantity: dec("10"), AveragePrice: dec("1500"), LastPrice: dec("1400")},
		},
		nil,
		[]kitestat.Position{{Symbol: "FUT", Quantity: dec("1"), AveragePrice: dec("100"), LastPrice: dec("150")}},
		kitestat.Funds{AvailableCash: dec("12345.68"), UtilisedDebits: dec("100")},
	)

	out := SummaryMarkdown(r)

	for _, want := range []string{
		"Portfolio Value: ₹45,500.00",
		"Total Invested: ₹45,000.00",
		"Net Positions P&L: ₹50.00",
		"Total P&L: ₹550.00",
		"Top Gainers",
		"Top Losers",
		"TCS: ₹1,500.00 (↗ 5.00%)",
		"INFY: -₹1,000.00 (↘ -6.67%)",
		"Available Cash: ₹12,345.68",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
	// a zero day book contributes no line at all
	if strings.Contains(out, "Positions Day Trading") {
		t.Errorf("zero day M2M must be omitted\n%s", out)
	}
}

func TestSummaryMarkdownShowsNonZeroDayBook(t *testing.T) {
	r := kitestat.NewReport(
		nil,
		[]kitestat.Position{{Symbol: "FUT", Quantity: dec("1"), AveragePrice: dec("100"), LastPrice: dec("110")}},
		nil,
		kitestat.Funds{},
	)
	out := SummaryMarkdown(r)
	if !strings.Contains(out, "Positions Day Trading: ₹10.00") {
		t.Errorf("day trading line missing\n%s", out)
	}
	// and the day book still stays out of the total
	if !strings.Contains(out, "Total P&L: ₹0.00") {
		t.Errorf("total must exclude the day book\n%s", out)
	}
}

func TestSummaryMarkdownEmptyReport(t *testing.T) {
	out := SummaryMarkdown(kitestat.NewReport(nil, nil, nil, kitestat.Funds{}))
	for _, want := range []string{
		"Portfolio Value: ₹0.00",
		"Total P&L: ₹0.00 (→ 0.00%)",
		"Available Cash: ₹0.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("empty summary missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Top Gainers") || strings.Contains(out, "Top Losers") {
		t.Errorf("empty summary must not list movers\n%s", out)
	}
}

func TestDetailedMarkdownModes(t *testing.T) {
	r := kitestat.NewReport(
		[]kitestat.Holding{{Symbol: "TCS", Quantity: dec("10"), AveragePrice: dec("3000"), LastPrice: dec("3150")}},
		[]kitestat.Position{{Product: "MIS", Symbol: "DFUT", Quantity: dec("1"), AveragePrice: dec("10"), LastPrice: dec("12")}},
		[]kitestat.Position{{Product: "NRML", Symbol: "NFUT", Quantity: dec("2"), AveragePrice: dec("10"), LastPrice: dec("9")}},
		kitestat.Funds{AvailableCash: dec("100")},
	)

	testCases := []struct {
		mode    Mode
		want    []string
		exclude []string
	}{
		{
			mode:    ModeFunds,
			want:    []string{"Funds (Equity)", "Available cash: ₹100.00"},
			exclude: []string{"Holdings", "Positions (Day)"},
		},
		{
			mode:    ModeHoldings,
			want:    []string{"Holdings", "TCS", "Total Invested: ₹30,000.00", "Unrealized PnL: ₹1,500.00 (5.00%)"},
			exclude: []string{"Positions (Day)", "Funds (Equity)"},
		},
		{
			// positions mode always renders both books separately
			mode:    ModePositions,
			want:    []string{"Positions (Day)", "DFUT", "Total Day M2M: ₹2.00", "Positions (Net)", "NFUT", "Total Net M2M: -₹2.00"},
			exclude: []string{"Holdings", "Funds (Equity)"},
		},
		{
			mode: ModeAll,
			want: []string{"Funds (Equity)", "Holdings", "Positions (Day)", "Positions (Net)"},
		},
	}
	for _, tc := range testCases {
		t.Run(string(tc.mode), func(t *testing.T) {
			out := DetailedMarkdown(r, tc.mode)
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Errorf("mode %s missing %q\n%s", tc.mode, want, out)
				}
			}
			for _, excl := range tc.exclude {
				if strings.Contains(out, excl) {
					t.Errorf("mode %s must not render %q\n%s", tc.mode, excl, out)
				}
			}
		})
	}
}

func TestDetailedMarkdownEmptyBooks(t *testing.T) {
	out := DetailedMarkdown(kitestat.NewReport(nil, nil, nil, kitestat.Funds{}), ModeAll)
	if !strings.Contains(out, "(none)") {
		t.Errorf("empty books should render a (none) placeholder\n%s", out)
	}
}

func TestDetailedTableCellsMatchCSVRecords(t *testing.T) {
	r := kitestat.NewReport(
		[]kitestat.Holding{{Symbol: "TCS", Exchange: "NSE", Quantity: dec("10"), AveragePrice: dec("3000"), LastPrice: dec("3150")}},
		nil, nil, kitestat.Funds{},
	)
	out := DetailedMarkdown(r, ModeHoldings)
	for _, cell := range r.Holdings[0].Record() {
		if !strings.Contains(out, cell) {
			t.Errorf("table missing CSV record cell %q\n%s", cell, out)
		}
	}
}
