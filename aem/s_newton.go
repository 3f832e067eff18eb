// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"math"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// SolverNewton solves the boundary-condition equations using the Newton-Raphson method
//  Notes:
//   1) iterations start from the current parameters of the elements
//   2) at most NmaxIt updates p ← p + δp are performed
//   3) convergence: max|r| < Tol·(1 + max|target|) or max|δp| < Tol·(1 + max|p|)
type SolverNewton struct {
	Dat *inp.SolverData
}

// set factory
func init() {
	allocators[inp.SolverNewton] = func(dat *inp.SolverData) Solver {
		return &SolverNewton{dat}
	}
}

// Solve solves the boundary-condition equations
func (o *SolverNewton) Solve(m *Model) (rep *Report, err error) {

	// report
	rep = newReport(inp.SolverNewton, o.Dat.Resid)
	defer rep.finish(m)

	// system
	sys, err := newSystem(m, o.Dat.Resid)
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.Neq, rep.Nprm = sys.neq, sys.nprm
	if sys.neq != sys.nprm {
		return rep, fail(rep, Failed, chk.Err("%d equations and %d unknowns: %w", sys.neq, sys.nprm, ErrIllPosed))
	}

	// message
	var Lδp float64
	if o.Dat.ShowR {
		io.Pf("\n%4s%23s%23s\n", "it", "max|r|", "max|δp|")
	}

	// iterations
	p := m.FreePrms()
	for it := 0; ; it++ {
		rep.It = it

		// residual
		err = sys.residual()
		if err != nil {
			return rep, fail(rep, Failed, err)
		}
		rep.setResid(sys.r)
		if o.Dat.ShowR {
			io.Pf("%4d%23.15e%23.15e\n", it, rep.Rnorm, Lδp)
		}

		// check convergence on r
		if sys.converged(rep.Rnorm, o.Dat.Tol) {
			rep.Status = Converged
			return
		}
		if it == o.Dat.NmaxIt {
			return rep, fail(rep, Stalled, chk.Err("max|r| = %g after %d iterations: %w", rep.Rnorm, it, ErrStalled))
		}

		// Jacobian and increment
		err = sys.jacobian()
		if err != nil {
			return rep, fail(rep, Failed, err)
		}
		δ, e := solveLU(sys.J, sys.r, o.Dat.Eps)
		if e != nil {
			diagnose(sys.J, rep)
			return rep, fail(rep, Failed, e)
		}

		// update
		for i := range p {
			p[i] += δ[i]
		}
		err = m.SetFreePrms(p)
		if err != nil {
			return rep, fail(rep, Failed, err)
		}
		Lδp = floats.Norm(δ, math.Inf(1))

		// check convergence on δp
		if small(δ, p, o.Dat.Tol) {
			rep.It = it + 1
			err = sys.residual()
			if err != nil {
				return rep, fail(rep, Failed, err)
			}
			rep.setResid(sys.r)
			if o.Dat.ShowR {
				io.Pf("%4d%23.15e%23.15e\n", rep.It, rep.Rnorm, Lδp)
			}
			rep.Status = Converged
			return
		}
	}
}
