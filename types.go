package kitestat

import (
	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Raw account records, fully typed. The Kite API returns loosely typed
// key/value payloads; the constructors below resolve every field to a
// definite value (zero, empty string) so the aggregators never see a
// missing or malformed field.

// Holding is one demat holding: a long-term equity position valued at
// current market price against historical average cost.
type Holding struct {
	Symbol       string
	Exchange     string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	LastPrice    decimal.Decimal
	DayChange    decimal.Decimal // per-unit change since previous close
}

// Position is one open trade in the intraday or carried book. A
// negative quantity denotes a short.
type Position struct {
	Product      string
	Symbol       string
	Exchange     string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	LastPrice    decimal.Decimal
}

// Funds is the equity-segment cash snapshot from the margins payload.
type Funds struct {
	AvailableCash  decimal.Decimal
	UtilisedDebits decimal.Decimal
}

// NewHolding builds a typed holding from a raw API record.
func NewHolding(raw map[string]any) Holding {
	return Holding{
		Symbol:       stringField(raw, "tradingsymbol"),
		Exchange:     stringField(raw, "exchange"),
		Quantity:     ToDecimal(raw["quantity"]),
		AveragePrice: ToDecimal(raw["average_price"]),
		LastPrice:    ToDecimal(raw["last_price"]),
		DayChange:    ToDecimal(raw["day_change"]),
	}
}

// NewPosition builds a typed position from a raw API record.
func NewPosition(raw map[string]any) Position {
	return Position{
		Product:      stringField(raw, "product"),
		Symbol:       stringField(raw, "tradingsymbol"),
		Exchange:     stringField(raw, "exchange"),
		Quantity:     ToDecimal(raw["quantity"]),
		AveragePrice: ToDecimal(raw["average_price"]),
		LastPrice:    ToDecimal(raw["last_price"]),
	}
}

// NewFunds extracts the cash figures from a raw margins payload. The
// payload nests them under available.cash and utilised.debits; either
// branch may be absent and degrades to zero.
func NewFunds(raw any) Funds {
	return Funds{
		AvailableCash:  Quantize(pathDecimal(raw, "$.available.cash"), 2),
		UtilisedDebits: Quantize(pathDecimal(raw, "$.utilised.debits"), 2),
	}
}

// pathDecimal resolves a jsonpath into raw and converts the value. Any
// failure along the path is a missing field, hence zero.
func pathDecimal(raw any, path string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	v, err := jsonpath.Get(path, raw)
	if err != nil {
		return decimal.Zero
	}
	return ToDecimal(v)
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
