// Package kitestat computes a point-in-time status report for a Zerodha
// trading account: holdings valuation, position mark-to-market, and
// available funds.
//
// All monetary arithmetic is exact decimal. Raw account records come in
// loosely typed from the Kite Connect API (see the kite subpackage) and
// are resolved to fully typed records at the boundary; from there the
// aggregation is pure: raw records in, computed rows and totals out.
package kitestat
