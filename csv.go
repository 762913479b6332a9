package kitestat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CSV snapshot export. The computed rows are the canonical exportable
// record shape: the columns below match the row field order and are the
// same values the detailed view renders.

// HoldingColumns is the header of a holdings snapshot file.
var HoldingColumns = []string{"tradingsymbol", "exchange", "quantity", "avg_price", "last_price", "invested", "value", "pnl", "pnl_pct", "day_change"}

// PositionColumns is the header of a positions snapshot file.
var PositionColumns = []string{"product", "tradingsymbol", "exchange", "qty", "avg_price", "ltp", "m2m"}

// Record returns the row as CSV fields in HoldingColumns order.
func (r HoldingRow) Record() []string {
	return []string{
		r.Symbol,
		r.Exchange,
		r.Quantity.String(),
		r.AveragePrice.StringFixed(2),
		r.LastPrice.StringFixed(2),
		r.Invested.StringFixed(2),
		r.Value.StringFixed(2),
		r.PnL.StringFixed(2),
		r.PnLPct.StringFixed(2),
		r.DayChange.StringFixed(2),
	}
}

// Record returns the row as CSV fields in PositionColumns order.
func (p PositionRow) Record() []string {
	return []string{
		p.Product,
		p.Symbol,
		p.Exchange,
		p.Quantity.String(),
		p.AveragePrice.StringFixed(2),
		p.LastPrice.StringFixed(2),
		p.M2M.StringFixed(2),
	}
}

// WriteHoldingsCSV writes a holdings snapshot to w.
func WriteHoldingsCSV(w io.Writer, rows []HoldingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(HoldingColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePositionsCSV writes a positions snapshot to w.
func WritePositionsCSV(w io.Writer, rows []PositionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PositionColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSnapshots writes one CSV file per non-empty row set under dir,
// creating it if needed. Files are named <set>_<timestamp>.csv. It
// returns the paths written.
func (r *Report) ExportSnapshots(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create snapshot dir %q: %w", dir, err)
	}
	stamp := Stamp(r.Time)
	var paths []string

	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", name, stamp))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot create snapshot %q: %w", path, err)
		}
		defer f.Close()
		if err := fn(f); err != nil {
			return fmt.Errorf("cannot write snapshot %q: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	}

	if len(r.Holdings) > 0 {
		if err := write("holdings", func(w io.Writer) error { return WriteHoldingsCSV(w, r.Holdings) }); err != nil {
			return paths, err
		}
	}
	if len(r.DayPositions) > 0 {
		if err := write("positions_day", func(w io.Writer) error { return WritePositionsCSV(w, r.DayPositions) }); err != nil {
			return paths, err
		}
	}
	if len(r.NetPositions) > 0 {
		if err := write("positions_net", func(w io.Writer) error { return WritePositionsCSV(w, r.NetPositions) }); err != nil {
			return paths, err
		}
	}
	return paths, nil
}
