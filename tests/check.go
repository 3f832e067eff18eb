// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test complete simulations
package tests

import (
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/cpmech/goaem/aem"
	"github.com/cpmech/goaem/ele"
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prm holds the reference value of the free parameter of an element
type Prm struct {
	Eid int     `json:"eid"` // element id
	V   float64 `json:"v"`   // value; e.g. Q of a well or N of an area sink
}

// Point holds reference results at a point
type Point struct {
	X  float64 `json:"x"`  // x-coordinate
	Y  float64 `json:"y"`  // y-coordinate
	H  float64 `json:"h"`  // head
	Qx float64 `json:"qx"` // x-component of discharge
	Qy float64 `json:"qy"` // y-component of discharge
}

// Results holds reference results
type Results struct {
	Prms   []Prm   `json:"prms"`   // free parameters
	Total  float64 `json:"total"`  // total abstraction
	Points []Point `json:"points"` // results at points
}

// CompareResults runs a simulation and compares the results with a reference (.cmp) file
//  Input:
//   solver -- if not nil, replaces the solver data of the simulation file
//   tolp   -- tolerance for free parameters and total abstraction (relative to magnitude)
//   tolh   -- tolerance for heads
//   tolq   -- tolerance for discharges
func CompareResults(tst *testing.T, simfilepath, cmpfname string, solver *inp.SolverData, tolp, tolh, tolq float64, verbose bool) (main *aem.Main) {

	// read simulation
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		tst.Errorf("CompareResults: cannot read simulation:\n%v", err)
		return
	}
	if solver != nil {
		sim.Solver = *solver
	}

	// run
	main, err = aem.NewMainSim(sim, verbose)
	if err != nil {
		tst.Errorf("CompareResults: cannot allocate simulation:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("CompareResults: Run failed:\n%v", err)
		return
	}

	// read file with comparison results
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:%v\n", err)
		return
	}

	// check free parameters
	if verbose {
		io.Pfgreen(". . . checking free parameters . . .\n")
	}
	for _, p := range cmp.Prms {
		e := main.Model.Find(p.Eid)
		f, ok := e.(ele.WithFreePrms)
		if !ok || f.Nprms() != 1 {
			tst.Errorf("CompareResults: element %d must have one free parameter", p.Eid)
			return
		}
		chk.AnaNum(tst, io.Sf("p%d", p.Eid), tolp*(1+math.Abs(p.V)), f.FreePrms()[0], p.V, verbose)
	}
	chk.AnaNum(tst, "total", tolp*(1+math.Abs(cmp.Total)), main.Report.Total, cmp.Total, verbose)

	// check heads and discharges
	if verbose {
		io.Pfgreen(". . . checking heads and discharges . . .\n")
	}
	for _, p := range cmp.Points {
		z := complex(p.X, p.Y)
		h, err := main.Model.Head(z)
		if err != nil {
			tst.Errorf("CompareResults: cannot compute head at %v:\n%v", z, err)
			return
		}
		W := main.Model.Discharge(z)
		chk.AnaNum(tst, io.Sf("h @ %v", z), tolh, h, p.H, verbose)
		chk.AnaNum(tst, io.Sf("qx @ %v", z), tolq, real(W), p.Qx, verbose)
		chk.AnaNum(tst, io.Sf("qy @ %v", z), tolq, -imag(W), p.Qy, verbose)
	}
	return
}

// CheckBcs checks that the heads at all boundary conditions equal their targets
func CheckBcs(tst *testing.T, m *aem.Model, tolh float64, verbose bool) {
	for _, bc := range m.Bcs() {
		h, err := m.Head(bc.Z)
		if err != nil {
			tst.Errorf("CheckBcs: cannot compute head at control point of element %d:\n%v", bc.Eid, err)
			return
		}
		chk.AnaNum(tst, io.Sf("h%d", bc.Eid), tolh, h, bc.Head, verbose)
	}
}

