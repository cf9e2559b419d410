package marketdata_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/meenmo/xirr/marketdata"
	"github.com/meenmo/xirr/xirr"
)

func TestStaticSource_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []xirr.Payment{
		xirr.NewPayment(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), -1000.0),
		xirr.NewPayment(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 1100.0),
	}

	src := marketdata.NewStaticSource(in)
	out, err := src.Payments()
	if err != nil {
		t.Fatalf("Payments error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d payments, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("payment %d mismatch: %+v vs %+v", i, out[i], in[i])
		}
	}

	// Mutating the returned slice must not reach the source.
	out[0].Amount = 0
	again, _ := src.Payments()
	if again[0].Amount != -1000.0 {
		t.Fatal("returned slice aliases the source")
	}
}

func TestStaticSource_FeedsSolver(t *testing.T) {
	t.Parallel()

	src := marketdata.NewStaticSource([]xirr.Payment{
		xirr.NewPayment(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), -1000.0),
		xirr.NewPayment(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 1100.0),
	})

	payments, err := src.Payments()
	if err != nil {
		t.Fatalf("Payments error: %v", err)
	}
	rate, err := xirr.Compute(payments)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if math.Abs(rate-0.10) > 1e-6 {
		t.Fatalf("rate = %v, want 0.10", rate)
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	body := "date,amount\n2015-06-11,-1000.00\n2018-06-10, 20000.00\n"
	payments, err := marketdata.ReadCSV(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}
	if payments[0].Amount != -1000.0 {
		t.Fatalf("amount[0] = %v, want -1000", payments[0].Amount)
	}
	if payments[1].Amount != 20000.0 {
		t.Fatalf("amount[1] = %v, want 20000", payments[1].Amount)
	}
	want := time.Date(2015, 6, 11, 0, 0, 0, 0, time.UTC)
	if !payments[0].Date.Equal(want) {
		t.Fatalf("date[0] = %s", payments[0].Date.Format("2006-01-02"))
	}
}

func TestReadCSV_NoHeader(t *testing.T) {
	t.Parallel()

	payments, err := marketdata.ReadCSV(strings.NewReader("2019-01-01,-500\n"))
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != -500.0 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bad date":    "06/11/2015,-1000\n",
		"bad amount":  "2015-06-11,one thousand\n",
		"wrong arity": "2015-06-11,-1000,EUR\n",
	}
	for name, body := range cases {
		if _, err := marketdata.ReadCSV(strings.NewReader(body)); err == nil {
			t.Fatalf("%s: ReadCSV succeeded, want error", name)
		}
	}
}
