// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"time"

	"github.com/cpmech/goaem/ele"
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/goaem/mdl/geology"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the analytic element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Model   *Model          // aquifer and elements
	Solver  Solver          // solver of boundary-condition equations
	Report  *Report         // results of last run
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.json) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return nil, err
	}
	if verbose {
		io.Pf("> Simulation (.json) file read\n")
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure from already read simulation data
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{Sim: sim, ShowMsg: verbose}

	// geology
	geo := new(geology.Model)
	err = geo.Init(sim.Geology)
	if err != nil {
		return nil, chk.Err("cannot initialise geology:\n%w", err)
	}

	// elements
	o.Model, err = NewModel(geo)
	if err != nil {
		return nil, err
	}
	for _, edat := range sim.Elements {
		e, err := ele.New(edat)
		if err != nil {
			return nil, err
		}
		err = o.Model.Add(e)
		if err != nil {
			return nil, err
		}
	}
	if o.ShowMsg {
		io.Pf("> %d elements allocated\n", len(o.Model.Elems))
	}

	// solver
	o.Solver, err = NewSolver(&sim.Solver)
	if err != nil {
		return nil, err
	}
	return
}

// Run solves the boundary-condition equations
//  Note: on solver failures, o.Report holds the partial results
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Solving %d equations for %d unknowns\n", len(o.Model.Bcs()), o.Model.Nprms())
	}

	// solve
	o.Report, err = o.Solver.Solve(o.Model)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) {
	if !o.ShowMsg {
		return
	}
	if prevErr == nil {
		io.PfGreen("> Success\n")
	} else {
		io.PfRed("> Failed\n")
	}
	io.Pf("> CPU time = %v\n", time.Since(cputime))
}
