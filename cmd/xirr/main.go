// Command xirr computes the extended internal rate of return of dated
// cash flows supplied as JSON, CSV, or a Postgres query.
//
// JSON input is a single object or an array of objects:
//
//	{"task_id": "fund-a", "payments": [{"date": "2015-06-11", "amount": -1000.0}, ...]}
//
// Output mirrors the input shape, one result object per task, with a
// machine-readable error_kind on failure so callers can branch on
// malformed input versus numerical infeasibility.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/meenmo/xirr/marketdata"
	"github.com/meenmo/xirr/utils"
	"github.com/meenmo/xirr/xirr"
	"github.com/meenmo/xirr/xirr/config"
)

type taskInput struct {
	TaskID   string        `json:"task_id,omitempty"`
	Payments []paymentJSON `json:"payments"`
}

type paymentJSON struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type taskOutput struct {
	TaskID     string  `json:"task_id,omitempty"`
	Rate       float64 `json:"rate"`
	Iterations int     `json:"iterations"`
	Error      string  `json:"error,omitempty"`
	ErrorKind  string  `json:"error_kind,omitempty"`
}

// Boundary error kinds. The core's sentinel errors map 1:1; anything
// rejected before the solver runs is bad_input.
const (
	kindBadInput        = "bad_input"
	kindInvalidPayments = "invalid_payments"
	kindNoSolution      = "no_solution"
	kindNoConvergence   = "no_convergence"
)

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	csvPath := flag.String("csv", "", "CSV input path with date,amount rows")
	dsn := flag.String("dsn", "", "Postgres DSN to load payments from")
	query := flag.String("query", "", "SQL returning (date, amount) rows (with -dsn)")
	configPath := flag.String("config", "", "YAML solver parameter file")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: xirr [-input <path> | -csv <path> | -dsn <dsn> -query <sql>] [-config <path>]")
		fmt.Fprintln(os.Stderr, "Compute the internal rate of return of irregularly dated cash flows.")
		return
	}

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			exitError(fmt.Sprintf("load config: %v", err))
		}
		config.SetConfig(cfg)
	}

	switch {
	case *csvPath != "":
		runSource(csvSource(*csvPath))
	case *dsn != "":
		if strings.TrimSpace(*query) == "" {
			exitError("-dsn requires -query")
		}
		src, err := marketdata.OpenPostgresSource(*dsn, *query)
		if err != nil {
			exitError(err.Error())
		}
		defer src.Close()
		runSource(src)
	default:
		runJSON(*inputPath)
	}
}

// csvSource adapts a CSV file path to the PaymentSource interface.
type csvSource string

func (p csvSource) Payments() ([]xirr.Payment, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return marketdata.ReadCSV(f)
}

func runSource(src marketdata.PaymentSource) {
	payments, err := src.Payments()
	if err != nil {
		exitError(err.Error())
	}

	out := solve(taskFromPayments(payments))
	b, _ := json.Marshal(out)
	fmt.Println(string(b))
	if out.Error != "" {
		os.Exit(1)
	}
}

func taskFromPayments(payments []xirr.Payment) taskInput {
	in := taskInput{Payments: make([]paymentJSON, 0, len(payments))}
	for _, p := range payments {
		in.Payments = append(in.Payments, paymentJSON{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount,
		})
	}
	return in
}

func runJSON(path string) {
	raw, err := readInput(strings.TrimSpace(path))
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]taskOutput, 0, len(inputs))
	for _, in := range inputs {
		out := solve(in)
		if out.Error != "" {
			hadError = true
		}
		outputs = append(outputs, out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

// solve validates the host-side shape of one task, runs the solver, and
// maps the outcome to the boundary error taxonomy.
func solve(in taskInput) taskOutput {
	payments := make([]xirr.Payment, 0, len(in.Payments))
	for _, p := range in.Payments {
		date, err := utils.ParseDate(p.Date)
		if err != nil {
			return failure(in, fmt.Sprintf("invalid date %q", p.Date), kindBadInput)
		}
		if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
			return failure(in, fmt.Sprintf("non-finite amount for date %s", p.Date), kindBadInput)
		}
		payments = append(payments, xirr.NewPayment(date, p.Amount))
	}

	res, err := xirr.Solve(payments)
	if err != nil {
		return failure(in, err.Error(), errorKind(err))
	}

	return taskOutput{TaskID: in.TaskID, Rate: res.Rate, Iterations: res.Iterations}
}

func failure(in taskInput, msg, kind string) taskOutput {
	return taskOutput{TaskID: in.TaskID, Error: msg, ErrorKind: kind}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, xirr.ErrInvalidPayments):
		return kindInvalidPayments
	case errors.Is(err, xirr.ErrNoSolution):
		return kindNoSolution
	case errors.Is(err, xirr.ErrNoConvergence):
		return kindNoConvergence
	default:
		return kindBadInput
	}
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input path and stdin is a terminal")
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]taskInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []taskInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input taskInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []taskInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(taskOutput{Error: msg, ErrorKind: kindBadInput})
	fmt.Println(string(b))
	os.Exit(1)
}
