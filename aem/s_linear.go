// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SolverLinear solves the boundary-condition equations with one direct solve.
// Since Ω is linear in the free parameters of all elements, the equations
// are written with potential residuals: J (p + δp) = Φ* ⇒ J δp = -r.
// The residual is recomputed afterwards to verify the solution.
type SolverLinear struct {
	Dat *inp.SolverData
}

// set factory
func init() {
	allocators[inp.SolverLinear] = func(dat *inp.SolverData) Solver {
		return &SolverLinear{dat}
	}
}

// Solve solves the boundary-condition equations
func (o *SolverLinear) Solve(m *Model) (rep *Report, err error) {

	// report
	rep = newReport(inp.SolverLinear, inp.ResidPotential)
	defer rep.finish(m)

	// system
	sys, err := newSystem(m, inp.ResidPotential)
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.Neq, rep.Nprm = sys.neq, sys.nprm
	if sys.neq != sys.nprm {
		return rep, fail(rep, Failed, chk.Err("%d equations and %d unknowns: %w", sys.neq, sys.nprm, ErrIllPosed))
	}

	// initial residual
	err = sys.residual()
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.setResid(sys.r)
	if sys.nprm == 0 {
		rep.Status = Converged
		return
	}

	// solve
	err = sys.jacobian()
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	δ, err := solveLU(sys.J, sys.r, o.Dat.Eps)
	if err != nil {
		diagnose(sys.J, rep)
		return rep, fail(rep, Failed, err)
	}
	p := m.FreePrms()
	for i := range p {
		p[i] += δ[i]
	}
	err = m.SetFreePrms(p)
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.It = 1

	// verify
	err = sys.residual()
	if err != nil {
		return rep, fail(rep, Failed, err)
	}
	rep.setResid(sys.r)
	if o.Dat.ShowR {
		io.Pf("%4s%23s\n", "it", "max|r|")
		io.Pf("%4d%23.15e\n", rep.It, rep.Rnorm)
	}
	if !sys.converged(rep.Rnorm, o.Dat.Tol) {
		return rep, fail(rep, Stalled, chk.Err("direct solution gives max|r| = %g: %w", rep.Rnorm, ErrStalled))
	}
	rep.Status = Converged
	return
}
