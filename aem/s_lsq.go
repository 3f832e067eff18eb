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

// SolverLsq solves overdetermined systems (more equations than unknowns) in
// the least-squares sense using Gauss-Newton iterations with QR decomposition.
// The final residual is in general not zero; convergence is declared when the
// increment of parameters is small (or the residual vanishes).
type SolverLsq struct {
	Dat *inp.SolverData
}

// set factory
func init() {
	allocators[inp.SolverLsq] = func(dat *inp.SolverData) Solver {
		return &SolverLsq{dat}
	}
}

// Solve solves the boundary-condition equations in the least-squares sense
func (o *SolverLsq) Solve(m *Model) (rep *Report, err error) {

	// report
	rep = newReport(inp.SolverLsq, o.Dat.Resid)
	defer rep.finish(m)

	// system
	sys, err := newSystem(m, o.Dat.Resid)
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.Neq, rep.Nprm = sys.neq, sys.nprm
	if sys.nprm == 0 || sys.neq < sys.nprm {
		return rep, fail(rep, Failed, chk.Err("least-squares requires 0 < unknowns ≤ equations. %d equations and %d unknowns: %w", sys.neq, sys.nprm, ErrIllPosed))
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
		if sys.converged(rep.Rnorm, o.Dat.Tol) {
			rep.Status = Converged
			return
		}
		if it == o.Dat.NmaxIt {
			return rep, fail(rep, Stalled, chk.Err("max|δp| = %g after %d iterations: %w", Lδp, it, ErrStalled))
		}

		// Gauss-Newton increment
		err = sys.jacobian()
		if err != nil {
			return rep, fail(rep, Failed, err)
		}
		δ, e := solveQR(sys.J, sys.r)
		if e != nil {
			diagnose(sys.J, rep)
			return rep, fail(rep, Failed, e)
		}
		for i := range p {
			p[i] += δ[i]
		}
		err = m.SetFreePrms(p)
		if err != nil {
			return rep, fail(rep, Failed, err)
		}
		Lδp = floats.Norm(δ, math.Inf(1))
		if small(δ, p, o.Dat.Tol) {
			rep.It = it + 1
			err = sys.residual()
			if err != nil {
				return rep, fail(rep, Failed, err)
			}
			rep.setResid(sys.r)
			rep.Status = Converged
			return
		}
	}
}
