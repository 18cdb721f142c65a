package newtoncotes

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numint/integrand"
)

// composite applies kernel on n equal panels of [x1, x2] and sums the results.
//
// Algorithm Outline:
//  1. Absent integrand ⇒ 0.
//  2. Coerce n < 1 to 1; width = (x2−x1)/n.
//  3. Panel i spans [x1 + i·width, x1 + (i+1)·width]; both endpoints are
//     recomputed from i so no drift accumulates across panels.
//  4. Sum sequentially, or in contiguous chunks when the options allow it.
func composite(x1, x2 float64, n int, f integrand.Func, kernel panelFunc, o Options) float64 {
	if !f.Present() {
		return 0
	}
	if n < 1 {
		n = 1
	}

	width := (x2 - x1) / float64(n)
	fn := f.Unwrap()

	workers := min(o.workers, n)
	if workers <= 1 || n < o.minParallelSteps {
		return sumPanels(x1, width, 0, n, fn, kernel)
	}

	return sumPanelsParallel(x1, width, n, workers, fn, kernel)
}

// sumPanels sums kernel over panels [lo, hi) left to right.
func sumPanels(x1, width float64, lo, hi int, fn func(float64) float64, kernel panelFunc) float64 {
	var sum float64
	for step := lo; step < hi; step++ {
		a := x1 + float64(step)*width
		b := x1 + float64(step+1)*width
		sum += kernel(a, b, fn)
	}

	return sum
}

// sumPanelsParallel splits [0, n) into workers contiguous chunks, sums each
// chunk on its own goroutine and adds the partial sums in chunk order.
// The combination order is fixed, so a given (n, workers) pair is itself
// reproducible; it only differs from the sequential sum in rounding.
func sumPanelsParallel(x1, width float64, n, workers int, fn func(float64) float64, kernel panelFunc) float64 {
	chunk := (n + workers - 1) / workers
	partial := make([]float64, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < workers; k++ {
		lo := k * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			continue
		}
		k := k
		g.Go(func() error {
			partial[k] = sumPanels(x1, width, lo, hi, fn, kernel)
			return nil
		})
	}
	// Workers never fail; Wait is only a barrier here.
	_ = g.Wait()

	var sum float64
	for _, p := range partial {
		sum += p
	}

	return sum
}
