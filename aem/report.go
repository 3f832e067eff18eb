// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Status defines the termination state of a solver
type Status int

// termination states
const (
	Unsolved  Status = iota // solver did not run
	Converged               // boundary conditions satisfied within tolerance
	Stalled                 // max number of iterations reached
	Failed                  // ill-posed or singular system or domain error
)

func (o Status) String() string {
	switch o {
	case Converged:
		return "converged"
	case Stalled:
		return "stalled"
	case Failed:
		return "failed"
	}
	return "unsolved"
}

// Report holds the results of a solve
type Report struct {
	Mode   string    // solver type; e.g. "linear", "newton", "lsq"
	Resid  string    // residual kind; e.g. "head", "potential"
	Status Status    // termination state
	It     int       // number of parameter updates performed
	Neq    int       // number of equations
	Nprm   int       // number of unknowns
	Prms   []float64 // last parameter vector
	Cols   []Column  // columns of Jacobian ↔ (element, parameter)
	R      []float64 // last residual vector
	Rnorm  float64   // max|r|
	Rank   int       // numerical rank of the Jacobian; only if the system was singular
	ZeroR  []int     // rows (equations) insensitive to all parameters; only if singular
	ZeroC  []int     // columns (parameters) not affecting any equation; only if singular

	// mass balance
	Eids         []int     // ids of active elements
	Abstractions []float64 // abstraction of each active element, parallel to Eids
	Total        float64   // total abstraction
}

// newReport returns a new report
func newReport(mode, resid string) *Report {
	return &Report{Mode: mode, Resid: resid, Rnorm: math.NaN(), Rank: -1}
}

// setResid stores a copy of the residual vector and its max norm
func (o *Report) setResid(r []float64) {
	o.R = append(o.R[:0], r...)
	o.Rnorm = 0
	if len(r) > 0 {
		o.Rnorm = floats.Norm(r, math.Inf(1))
	}
}

// finish collects the final parameters and the mass balance
func (o *Report) finish(m *Model) {
	o.Prms = m.FreePrms()
	o.Cols = m.Columns()
	o.Eids, o.Abstractions, o.Total = nil, nil, 0
	for _, e := range m.Elems {
		if e.IsActive() {
			o.Eids = append(o.Eids, e.Id())
			o.Abstractions = append(o.Abstractions, e.Abstraction())
		}
	}
	o.Total = m.Abstraction()
}

// String returns a summary of the report
func (o *Report) String() string {
	var b bytes.Buffer
	b.WriteString(io.Sf("solver    = %s (%s residuals)\n", o.Mode, o.Resid))
	b.WriteString(io.Sf("status    = %v\n", o.Status))
	b.WriteString(io.Sf("equations = %d\n", o.Neq))
	b.WriteString(io.Sf("unknowns  = %d\n", o.Nprm))
	b.WriteString(io.Sf("iters     = %d\n", o.It))
	b.WriteString(io.Sf("max|r|    = %g\n", o.Rnorm))
	if o.Rank >= 0 {
		b.WriteString(io.Sf("rank      = %d\n", o.Rank))
		b.WriteString(io.Sf("zero rows = %v\n", o.ZeroR))
		b.WriteString(io.Sf("zero cols = %v\n", o.ZeroC))
	}
	if len(o.Cols) == len(o.Prms) && len(o.Prms) > 0 {
		b.WriteString(io.Sf("%8s%6s%23s\n", "element", "prm", "value"))
		for i, c := range o.Cols {
			b.WriteString(io.Sf("%8d%6d%23.15e\n", c.Eid, c.Idx, o.Prms[i]))
		}
	}
	if len(o.Eids) > 0 {
		b.WriteString(io.Sf("%8s%23s\n", "element", "abstraction"))
		for i, id := range o.Eids {
			b.WriteString(io.Sf("%8d%23.15e\n", id, o.Abstractions[i]))
		}
		b.WriteString(io.Sf("%8s%23.15e\n", "total", o.Total))
	}
	return b.String()
}
