// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
)

// sentinel errors
var (
	ErrIllPosed       = chk.Err("ill-posed system")
	ErrSingularSystem = chk.Err("singular system")
	ErrStalled        = chk.Err("iterations did not converge")
	ErrNotFinite      = chk.Err("residual or Jacobian is not finite")
)

// Solver finds the free parameters of all active elements such that all
// boundary conditions are satisfied. The parameters are updated in place.
type Solver interface {
	Solve(m *Model) (rep *Report, err error)
}

// NewSolver returns a new solver; dat is checked first
func NewSolver(dat *inp.SolverData) (Solver, error) {
	if dat == nil {
		return nil, chk.Err("solver data must be given")
	}
	err := dat.PostProcess()
	if err != nil {
		return nil, chk.Err("solver data is invalid:\n%w", err)
	}
	alloc, ok := allocators[dat.Type]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", dat.Type)
	}
	return alloc(dat), nil
}

// allocators holds all available solvers
var allocators = make(map[string]func(dat *inp.SolverData) Solver)

// SolveError holds a solver failure and the state at failure
type SolveError struct {
	Report *Report // state at failure; e.g. last iterate and residual
	Err    error   // cause; wraps one of the sentinel errors
}

func (o *SolveError) Error() string {
	return o.Err.Error()
}

func (o *SolveError) Unwrap() error {
	return o.Err
}

// fail sets the status of report and returns a SolveError
func fail(rep *Report, status Status, cause error) error {
	rep.Status = status
	return &SolveError{Report: rep, Err: cause}
}
