package xirr

import (
	"fmt"
	"math"

	"github.com/meenmo/xirr/xirr/config"
)

// Result is the outcome of a successful solve.
type Result struct {
	// Rate is the annualized internal rate of return as a decimal
	// (e.g. 0.10 == 10%).
	Rate float64
	// Iterations is the number of solver steps taken.
	Iterations int
}

// Compute returns the extended internal rate of return of the payments:
// the rate r > -1 at which their net present value is zero.
//
// Failures are classified: ErrInvalidPayments for precondition
// violations, ErrNoSolution and ErrNoConvergence for numerical failure.
// Match with errors.Is.
func Compute(payments []Payment) (float64, error) {
	res, err := Solve(payments)
	if err != nil {
		return 0, err
	}
	return res.Rate, nil
}

// Solve is Compute with iteration reporting.
//
// The solver runs Newton-Raphson from the configured initial guess.
// Whenever the tangent is flat or a Newton candidate would leave the
// admissible domain (1+r > 0), the step falls back to bisection on a
// sign-change bracket probed outward from the configured bounds.
func Solve(payments []Payment) (Result, error) {
	fl, err := validate(payments)
	if err != nil {
		return Result{}, err
	}

	cfg := config.GetConfig()
	r := cfg.InitialGuess
	var br *bracket

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		v, d := npvAndDeriv(r, fl.origin, fl.payments, cfg.DaysInYear)
		if math.Abs(v) < cfg.ConvergenceTolerance {
			return Result{Rate: r, Iterations: iter}, nil
		}
		if br != nil {
			br.narrow(r, v)
		}

		next := r - v/d
		if d == 0 || 1+next <= 0 || math.IsNaN(next) {
			if br == nil {
				b, ok := findBracket(fl, cfg)
				if !ok {
					return Result{}, fmt.Errorf("%w: NPV has no sign change in the searched rate range", ErrNoSolution)
				}
				br = &b
			}
			next = br.mid()
		}
		r = next
	}

	return Result{}, fmt.Errorf("%w after %d iterations", ErrNoConvergence, cfg.MaxIterations)
}

// bracket is an interval [lo, hi] whose endpoint NPVs differ in sign.
type bracket struct {
	lo, hi   float64
	flo, fhi float64
}

func (b *bracket) mid() float64 {
	return (b.lo + b.hi) / 2
}

// narrow replaces the endpoint whose NPV sign matches v, keeping the
// sign change inside the interval. Points outside [lo, hi] are ignored.
func (b *bracket) narrow(r, v float64) {
	if r <= b.lo || r >= b.hi {
		return
	}
	if v*b.flo > 0 {
		b.lo, b.flo = r, v
	} else {
		b.hi, b.fhi = r, v
	}
}

// findBracket probes [cfg.BracketLow, cfg.BracketHigh] for a sign change
// in NPV, doubling the upper bound up to cfg.MaxBracketGrowth times.
// ok is false when no sign change exists in the searched range.
func findBracket(fl flows, cfg config.Config) (b bracket, ok bool) {
	lo, hi := cfg.BracketLow, cfg.BracketHigh
	flo, _ := npvAndDeriv(lo, fl.origin, fl.payments, cfg.DaysInYear)

	for i := 0; i <= cfg.MaxBracketGrowth; i++ {
		fhi, _ := npvAndDeriv(hi, fl.origin, fl.payments, cfg.DaysInYear)
		if flo*fhi < 0 {
			return bracket{lo: lo, hi: hi, flo: flo, fhi: fhi}, true
		}
		hi *= 2
	}
	return bracket{}, false
}
