// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Field holds the results of a batched evaluation; all slices are parallel to Z
type Field struct {
	Z    []complex128 // evaluation points
	Ω    []complex128 // complex potential
	W    []complex128 // complex discharge
	Head []float64    // head; NaN where the potential cannot be converted
	Div  []float64    // divergence of the discharge
}

// Grid returns the nodes of a regular nx × ny grid (nx, ny ≥ 2); x varies faster
func Grid(xmin, xmax, ymin, ymax float64, nx, ny int) (zs []complex128) {
	X := utl.LinSpace(xmin, xmax, nx)
	Y := utl.LinSpace(ymin, ymax, ny)
	zs = make([]complex128, 0, nx*ny)
	for _, y := range Y {
		for _, x := range X {
			zs = append(zs, complex(x, y))
		}
	}
	return
}

// Field evaluates the model at many points using nworkers goroutines.
// nworkers ≤ 0 means the number of CPUs. The first head conversion error
// (by point index) is returned together with the complete field.
func (o *Model) Field(zs []complex128, nworkers int) (res *Field, err error) {
	n := len(zs)
	res = &Field{
		Z:    zs,
		Ω:    make([]complex128, n),
		W:    make([]complex128, n),
		Head: make([]float64, n),
		Div:  make([]float64, n),
	}
	errs := make([]error, n)
	o.parallel(n, nworkers, func(i int) {
		z := zs[i]
		res.Ω[i] = o.Potential(z)
		res.W[i] = o.Discharge(z)
		res.Div[i] = o.Divergence(z)
		res.Head[i], errs[i] = o.Geo.PotentialToHead(real(res.Ω[i]), z)
		if errs[i] != nil {
			res.Head[i] = math.NaN()
		}
	})
	for i, e := range errs {
		if e != nil {
			return res, chk.Err("cannot compute head at z = %v:\n%w", zs[i], e)
		}
	}
	return
}

// Heads evaluates heads at many points; see Field
func (o *Model) Heads(zs []complex128, nworkers int) (heads []float64, err error) {
	heads = make([]float64, len(zs))
	errs := make([]error, len(zs))
	o.parallel(len(zs), nworkers, func(i int) {
		heads[i], errs[i] = o.Head(zs[i])
		if errs[i] != nil {
			heads[i] = math.NaN()
		}
	})
	for i, e := range errs {
		if e != nil {
			return heads, chk.Err("cannot compute head at z = %v:\n%w", zs[i], e)
		}
	}
	return
}

// parallel runs fcn(i) for i in [0, n) splitting the range among workers
func (o *Model) parallel(n, nworkers int, fcn func(i int)) {
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	if nworkers > n {
		nworkers = n
	}
	if nworkers < 2 {
		for i := 0; i < n; i++ {
			fcn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(nworkers)
	chunk := (n + nworkers - 1) / nworkers
	for w := 0; w < nworkers; w++ {
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fcn(i)
			}
		}(w*chunk, min(n, (w+1)*chunk))
	}
	wg.Wait()
}
