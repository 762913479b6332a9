package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anupamd/kitestat"
	"github.com/anupamd/kitestat/kite"
)

func stubClient(t *testing.T, handler http.Handler) *kite.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := kite.New("apikey")
	c.SetAccessToken("acctok")
	c.SetBaseURL(srv.URL)
	return c
}

func TestFetchReportAggregates(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/portfolio/holdings":
			fmt.Fprint(w, `{"status":"success","data":[
				{"tradingsymbol":"TCS","exchange":"NSE","quantity":10,"average_price":3000,"last_price":3150,"day_change":5}
			]}`)
		case "/portfolio/positions":
			fmt.Fprint(w, `{"status":"success","data":{"day":[],"net":[
				{"product":"NRML","tradingsymbol":"FUT","quantity":-5,"average_price":100,"last_price":90}
			]}}`)
		case "/user/margins":
			fmt.Fprint(w, `{"status":"success","data":{"equity":{"available":{"cash":"12345.678"},"utilised":{"debits":100}}}}`)
		default:
			http.NotFound(w, r)
		}
	})

	client := stubClient(t, handler)
	report := fetchReport(context.Background(), client, kitestat.Config{})

	if len(report.Holdings) != 1 || report.Holdings[0].Symbol != "TCS" {
		t.Fatalf("holdings = %+v", report.Holdings)
	}
	if got := report.Holdings[0].PnL.String(); got != "1500" {
		t.Errorf("pnl = %s, want 1500", got)
	}
	if got := report.NetM2M.String(); got != "50" {
		t.Errorf("net m2m = %s, want 50", got)
	}
	if got := report.Funds.AvailableCash.String(); got != "12345.68" {
		t.Errorf("available cash = %s, want 12345.68", got)
	}
}

func TestFetchReportDegradesFailedFetches(t *testing.T) {
	// every call fails; the report must still come out valid and zeroed
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"status":"error","message":"boom","error_type":"GeneralException"}`)
	})

	client := stubClient(t, handler)
	report := fetchReport(context.Background(), client, kitestat.Config{})

	if len(report.Holdings) != 0 || len(report.DayPositions) != 0 || len(report.NetPositions) != 0 {
		t.Errorf("failed fetches should yield empty row sets: %+v", report)
	}
	if !report.TotalPnL().IsZero() {
		t.Errorf("total pnl = %s, want 0", report.TotalPnL())
	}
	if !report.Funds.AvailableCash.IsZero() {
		t.Errorf("available cash = %s, want 0", report.Funds.AvailableCash)
	}
}
