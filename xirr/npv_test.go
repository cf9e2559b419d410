package xirr_test

import (
	"math"
	"testing"

	"github.com/meenmo/xirr/xirr"
)

func TestNPV_ZeroRateIsPlainSum(t *testing.T) {
	t.Parallel()

	payments := samplePayments()
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}

	npv, err := xirr.NPV(0, payments)
	if err != nil {
		t.Fatalf("NPV error: %v", err)
	}
	if math.Abs(npv-sum) > 1e-9 {
		t.Fatalf("NPV(0) = %v, want plain sum %v", npv, sum)
	}
}

func TestNPV_DiscountsToEarliestDate(t *testing.T) {
	t.Parallel()

	// +1100 one 365-day year after the origin at 10%: 1100/1.1 = 1000.
	npv, err := xirr.NPV(0.10, []xirr.Payment{
		pay(2019, 1, 1, -500.0),
		pay(2020, 1, 1, 1100.0),
	})
	if err != nil {
		t.Fatalf("NPV error: %v", err)
	}
	if math.Abs(npv-500.0) > 1e-9 {
		t.Fatalf("NPV = %v, want 500.0", npv)
	}
}

func TestNPV_ZeroAmountContributesNothing(t *testing.T) {
	t.Parallel()

	base := samplePayments()
	padded := append([]xirr.Payment{pay(2016, 2, 29, 0.0)}, base...)

	a, err := xirr.NPV(0.07, base)
	if err != nil {
		t.Fatalf("NPV(base) error: %v", err)
	}
	b, err := xirr.NPV(0.07, padded)
	if err != nil {
		t.Fatalf("NPV(padded) error: %v", err)
	}
	if a != b {
		t.Fatalf("zero amount changed NPV: %v vs %v", a, b)
	}
}

func TestNPV_RejectsInadmissibleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{-1.0, -1.5} {
		if _, err := xirr.NPV(rate, samplePayments()); err == nil {
			t.Fatalf("NPV(%v) succeeded, want error", rate)
		}
	}
}

func TestNPV_RejectsEmptySet(t *testing.T) {
	t.Parallel()

	if _, err := xirr.NPV(0.1, nil); err == nil {
		t.Fatal("NPV(empty) succeeded, want error")
	}
}
