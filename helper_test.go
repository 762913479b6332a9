package kitestat

import "github.com/shopspring/decimal"

// dec is a test helper to build a decimal from its string form.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
