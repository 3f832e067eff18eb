// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json) model description
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// solver types
const (
	SolverLinear = "linear" // direct solution of the linear system; all elements linear in their parameters
	SolverNewton = "newton" // Newton-Raphson iterations
	SolverLsq    = "lsq"    // least-squares (overdetermined systems)
)

// residual kinds
const (
	ResidHead      = "head"      // residuals in head units [L]
	ResidPotential = "potential" // residuals in discharge potential units [L³/T]
)

// SolverData holds solver data
type SolverData struct {

	// nonlinear solver
	Type   string  `json:"type"`   // solver type: {linear, newton, lsq}
	Resid  string  `json:"resid"`  // residual kind: {head, potential}. linear solver always uses potential
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Tol    float64 `json:"tol"`    // tolerance on max|r| or max|Δp|
	ShowR  bool    `json:"showr"`  // show residual

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0
}

// ElemData holds element data
type ElemData struct {
	Id    int        `json:"id"`    // id of element
	Type  string     `json:"type"`  // type of element. ex: well, uniform, refpoint, areasink
	X     float64    `json:"x"`     // x-coordinate of element's reference location
	Y     float64    `json:"y"`     // y-coordinate of element's reference location
	Inact bool       `json:"inact"` // whether element starts inactive or not
	Prms  dbf.Params `json:"prms"`  // element parameters; e.g. {"n":"Q", "v":100}
}

// Z returns the complex coordinate of element's reference location
func (o ElemData) Z() complex128 {
	return complex(o.X, o.Y)
}

// Simulation holds all model data
type Simulation struct {

	// input
	Desc     string      `json:"desc"`     // description of model
	Geology  dbf.Params  `json:"geology"`  // aquifer parameters: K, n, H, b
	Elements []*ElemData `json:"elements"` // all elements
	Solver   SolverData  `json:"solver"`   // solver data

	// derived
	Key string // filename key; e.g. "twowells" from "twowells.json"
}

// ReadSim reads all model data from a .json file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%w", simfilepath, err)
	}

	// set default values and decode
	o = new(Simulation)
	o.Solver.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// check
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("ReadSim: %q is invalid:\n%v", simfilepath, err)
	}
	return
}

// PostProcess checks the just read data
func (o *Simulation) PostProcess() (err error) {
	if len(o.Geology) == 0 {
		return chk.Err("geology parameters must be given")
	}
	ids := make(map[int]bool)
	for i, e := range o.Elements {
		if e == nil {
			return chk.Err("element # %d is empty", i)
		}
		if e.Type == "" {
			return chk.Err("type of element {id=%d} must be given", e.Id)
		}
		if ids[e.Id] {
			return chk.Err("element id = %d is repeated", e.Id)
		}
		ids[e.Id] = true
	}
	return o.Solver.PostProcess()
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = SolverLinear
	o.Resid = ResidHead
	o.NmaxIt = 20
	o.Tol = 1e-10
	o.Eps = 1e-16
}

// PostProcess checks solver data
func (o *SolverData) PostProcess() (err error) {
	switch o.Type {
	case SolverLinear, SolverNewton, SolverLsq:
	default:
		return chk.Err("solver type %q is incorrect; options are %q, %q and %q", o.Type, SolverLinear, SolverNewton, SolverLsq)
	}
	switch o.Resid {
	case ResidHead, ResidPotential:
	default:
		return chk.Err("residual kind %q is incorrect; options are %q and %q", o.Resid, ResidHead, ResidPotential)
	}
	if o.NmaxIt < 1 {
		return chk.Err("max number of iterations must be positive. NmaxIt = %d is invalid", o.NmaxIt)
	}
	if o.Tol <= 0 {
		return chk.Err("tolerance must be positive. Tol = %g is invalid", o.Tol)
	}
	if o.Eps <= 0 {
		return chk.Err("machine epsilon must be positive. Eps = %g is invalid", o.Eps)
	}
	return
}
