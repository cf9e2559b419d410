package xirr

import (
	"fmt"
	"sort"
	"time"
)

// flows is a validated cash flow set: payments stable-sorted by date,
// with the minimum date precomputed as the discounting origin.
type flows struct {
	payments []Payment
	origin   time.Time
}

// validate checks the solvability preconditions and normalizes the set.
//
// Sorting by date fixes the floating-point summation order, so the
// computed rate does not depend on the order the caller supplied.
func validate(payments []Payment) (flows, error) {
	if len(payments) == 0 {
		return flows{}, fmt.Errorf("%w: empty cash flow set", ErrInvalidPayments)
	}

	hasInflow, hasOutflow := false, false
	for _, p := range payments {
		if p.Amount > 0 {
			hasInflow = true
		} else if p.Amount < 0 {
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return flows{}, fmt.Errorf("%w: cash flows must contain both inflows and outflows", ErrInvalidPayments)
	}

	sorted := make([]Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return flows{payments: sorted, origin: sorted[0].Date}, nil
}
