package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numint/gausslegendre"
	"github.com/katalvlaran/numint/internal/catalog"
	"github.com/katalvlaran/numint/newtoncotes"
	"github.com/katalvlaran/numint/romberg"
)

// Method names accepted by --method and job files.
const (
	MethodTrapezoidal = "trapezoidal"
	MethodSimpson     = "simpson"
	MethodRomberg     = "romberg"
	MethodGauss       = "gauss"
)

// Methods lists the accepted method names.
var Methods = []string{MethodTrapezoidal, MethodSimpson, MethodRomberg, MethodGauss}

// normalizeMethod maps aliases onto the canonical method names.
func normalizeMethod(m string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "trapezoidal", "trapezoid", "trap":
		return MethodTrapezoidal, nil
	case "simpson":
		return MethodSimpson, nil
	case "romberg":
		return MethodRomberg, nil
	case "gauss", "gauss-legendre", "legendre":
		return MethodGauss, nil
	default:
		return "", fmt.Errorf("%q (want one of %v): %w", m, Methods, ErrUnknownMethod)
	}
}

// Job is one integration request, as read from a YAML job file or built
// from integrate flags.
type Job struct {
	Name    string `yaml:"name"`
	Method  string `yaml:"method"`
	Func    string `yaml:"func"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	N       int    `yaml:"n"`
	Workers int    `yaml:"workers,omitempty"`
	Table   bool   `yaml:"table,omitempty"`
}

// Result is the outcome of one Job.
type Result struct {
	Name   string      `json:"name,omitempty"`
	Method string      `json:"method"`
	Func   string      `json:"func"`
	From   float64     `json:"from"`
	To     float64     `json:"to"`
	N      int         `json:"n"`
	Value  float64     `json:"value"`
	Table  [][]float64 `json:"table,omitempty"`
}

// String renders r as an aligned key/value block.
func (r Result) String() string {
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "name:     %s\n", r.Name)
	}
	fmt.Fprintf(&b, "method:   %s\n", r.Method)
	fmt.Fprintf(&b, "function: %s\n", r.Func)
	fmt.Fprintf(&b, "interval: [%s, %s]\n", formatFloat(r.From), formatFloat(r.To))
	fmt.Fprintf(&b, "n:        %d\n", r.N)
	fmt.Fprintf(&b, "value:    %.12f\n", r.Value)
	for level, row := range r.Table {
		b.WriteString("R[" + strconv.Itoa(level) + "]:")
		for _, v := range row[:level+1] {
			fmt.Fprintf(&b, " %.10f", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Run resolves and evaluates j.
//
// Input errors (unknown method or function, bad bound) wrap ErrUnknownMethod,
// catalog.ErrUnknownFunc or ErrBadBound; a Gauss–Legendre solver failure
// wraps gausslegendre.ErrNoConvergence.
func Run(j Job) (Result, error) {
	method, err := normalizeMethod(j.Method)
	if err != nil {
		return Result{}, err
	}
	f, err := catalog.Lookup(j.Func)
	if err != nil {
		return Result{}, err
	}
	x1, err := ParseBound(j.From)
	if err != nil {
		return Result{}, fmt.Errorf("from: %w", err)
	}
	x2, err := ParseBound(j.To)
	if err != nil {
		return Result{}, fmt.Errorf("to: %w", err)
	}

	res := Result{Name: j.Name, Method: method, Func: j.Func, From: x1, To: x2, N: max(j.N, 1)}

	var opts []newtoncotes.Option
	if j.Workers > 1 {
		opts = append(opts, newtoncotes.WithWorkers(j.Workers))
	}

	switch method {
	case MethodTrapezoidal:
		res.Value = newtoncotes.Trapezoidal(x1, x2, j.N, f, opts...)
	case MethodSimpson:
		res.Value = newtoncotes.Simpson(x1, x2, j.N, f, opts...)
	case MethodRomberg:
		table := romberg.Integrate(x1, x2, j.N, f)
		res.Value = table.Estimate()
		if j.Table {
			res.Table = table
		}
	case MethodGauss:
		v, err := gausslegendre.Integrate(x1, x2, j.N, f)
		if err != nil {
			return Result{}, err
		}
		res.Value = v
	}

	return res, nil
}
