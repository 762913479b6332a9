package kitestat

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// this file contains the exact-decimal helpers every computed value
// goes through.

var hundred = decimal.NewFromInt(100)

// ToDecimal converts any numeric-like value to a decimal. It is a total
// function: nil, missing and unparsable inputs all yield zero. A
// malformed field in one API record must degrade that field, not abort
// the whole report.
func ToDecimal(x any) decimal.Decimal {
	switch v := x.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint64:
		return decimal.NewFromUint64(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Quantize rounds x to places decimal digits, ties rounding away from
// zero. Every monetary and percentage output goes through it so that
// two independently computed but equal amounts render identically.
func Quantize(x decimal.Decimal, places int32) decimal.Decimal {
	return x.Round(places)
}

// Percentage returns n/d*100 quantized to 2 places. A zero denominator
// is a defined business case (a position with zero cost basis) and
// yields exactly zero rather than an error.
func Percentage(n, d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return Quantize(n.Mul(hundred).Div(d), 2)
}

// Rupee renders x as Indian rupees with thousands separators. Display
// only: the stored value is never altered.
func Rupee(x decimal.Decimal) string {
	cur := money.GetCurrency(money.INR)
	minor := Quantize(x, int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), money.INR).Display()
}

// Stamp formats t in IST, the exchange's timezone, for report titles
// and snapshot file names.
func Stamp(t time.Time) string {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.FixedZone("IST", 5*3600+1800)
	}
	return t.In(ist).Format("2006-01-02_15-04-05")
}
