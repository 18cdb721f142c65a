// Package catalog is the registry of named integrands exposed by the numint
// command line. Each entry pairs a stable name with a human-readable formula.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/numint/integrand"
)

// ErrUnknownFunc is returned by Lookup for names not in the catalog.
var ErrUnknownFunc = errors.New("catalog: unknown function")

// NoneName selects the absent integrand.
const NoneName = "none"

// Entry is one named integrand.
type Entry struct {
	Name    string
	Formula string
	Fn      func(float64) float64
}

// Reference is 5/(e^π − 2)·e^{2x}·cos(x); its integral over [0, π/2] is 1.
func Reference(x float64) float64 {
	return 5.0 / (math.Exp(math.Pi) - 2.0) * math.Exp(2.0*x) * math.Cos(x)
}

var entries = map[string]Entry{
	"reference": {Name: "reference", Formula: "5/(e^pi-2)*e^(2x)*cos(x)", Fn: Reference},
	"sin":       {Name: "sin", Formula: "sin(x)", Fn: math.Sin},
	"cos":       {Name: "cos", Formula: "cos(x)", Fn: math.Cos},
	"exp":       {Name: "exp", Formula: "e^x", Fn: math.Exp},
	"sqrt":      {Name: "sqrt", Formula: "sqrt(x)", Fn: math.Sqrt},
	"square":    {Name: "square", Formula: "x^2", Fn: func(x float64) float64 { return x * x }},
	"cube":      {Name: "cube", Formula: "x^3", Fn: func(x float64) float64 { return x * x * x }},
	"gaussian":  {Name: "gaussian", Formula: "e^(-x^2)", Fn: func(x float64) float64 { return math.Exp(-x * x) }},
	"runge":     {Name: "runge", Formula: "1/(1+25x^2)", Fn: func(x float64) float64 { return 1 / (1 + 25*x*x) }},
	NoneName:    {Name: NoneName, Formula: "(absent)"},
}

// Lookup returns the integrand registered under name. "none" yields the
// absent integrand.
func Lookup(name string) (integrand.Func, error) {
	e, ok := entries[name]
	if !ok {
		return integrand.None(), fmt.Errorf("%q: %w", name, ErrUnknownFunc)
	}

	return integrand.Of(e.Fn), nil
}

// Entries returns all entries sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Names returns the sorted entry names.
func Names() []string {
	all := Entries()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}

	return names
}
