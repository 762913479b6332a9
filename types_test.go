package kitestat

import "testing"

func TestNewHolding(t *testing.T) {
	raw := map[string]any{
		"tradingsymbol": "TCS",
		"exchange":      "NSE",
		"quantity":      float64(10),
		"average_price": float64(3000),
		"last_price":    float64(3150),
		"day_change":    float64(5),
	}
	h := NewHolding(raw)
	if h.Symbol != "TCS" || h.Exchange != "NSE" {
		t.Errorf("NewHolding identity fields = %q/%q", h.Symbol, h.Exchange)
	}
	if !h.Quantity.Equal(dec("10")) || !h.AveragePrice.Equal(dec("3000")) {
		t.Errorf("NewHolding numeric fields = %s/%s", h.Quantity, h.AveragePrice)
	}
}

func TestNewHoldingDegradesMalformedFields(t *testing.T) {
	h := NewHolding(map[string]any{
		"tradingsymbol": "INFY",
		"quantity":      "not a number",
		"average_price": nil,
	})
	if h.Symbol != "INFY" {
		t.Errorf("symbol = %q", h.Symbol)
	}
	if !h.Quantity.IsZero() || !h.AveragePrice.IsZero() || !h.LastPrice.IsZero() {
		t.Errorf("malformed fields should degrade to zero, got %s/%s/%s", h.Quantity, h.AveragePrice, h.LastPrice)
	}
}

func TestNewFunds(t *testing.T) {
	testCases := []struct {
		name         string
		raw          any
		wantCash     string
		wantUtilised string
	}{
		{
			name: "string cash quantizes half up",
			raw: map[string]any{
				"available": map[string]any{"cash": "12345.678"},
			},
			wantCash:     "12345.68",
			wantUtilised: "0",
		},
		{
			name: "both branches present",
			raw: map[string]any{
				"available": map[string]any{"cash": float64(5000)},
				"utilised":  map[string]any{"debits": float64(1200.555)},
			},
			wantCash:     "5000",
			wantUtilised: "1200.56",
		},
		{name: "empty payload", raw: map[string]any{}, wantCash: "0", wantUtilised: "0"},
		{name: "nil payload", raw: nil, wantCash: "0", wantUtilised: "0"},
		{
			name:         "wrong shape",
			raw:          map[string]any{"available": "oops"},
			wantCash:     "0",
			wantUtilised: "0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFunds(tc.raw)
			if !f.AvailableCash.Equal(dec(tc.wantCash)) {
				t.Errorf("AvailableCash = %s, want %s", f.AvailableCash, tc.wantCash)
			}
			if !f.UtilisedDebits.Equal(dec(tc.wantUtilised)) {
				t.Errorf("UtilisedDebits = %s, want %s", f.UtilisedDebits, tc.wantUtilised)
			}
		})
	}
}
