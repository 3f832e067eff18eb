// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/goaem/aem"
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_wellfield01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("wellfield01. linear solver")

	main := CompareResults(tst, "data/wellfield.json", "data/wellfield.cmp", nil, 1e-10, 1e-10, 1e-10, chk.Verbose)
	if main == nil {
		return
	}
	io.Pf("%v", main.Report)
	if main.Report.Status != aem.Converged {
		tst.Errorf("status should be converged. got %v", main.Report.Status)
	}
	CheckBcs(tst, main.Model, 1e-10, chk.Verbose)

	// Jacobians
	jac := Jac{Tst: tst, Tol: 1e-6, Step: 1e-3, Verb: chk.Verbose}
	for _, z := range aem.Grid(-250, 250, -150, 150, 5, 4) {
		jac.Check(main.Model, z)
	}
}

func Test_wellfield02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("wellfield02. newton and least-squares solvers")

	for _, typ := range []string{inp.SolverNewton, inp.SolverLsq} {
		io.Pfyel("\n%s\n", typ)
		var dat inp.SolverData
		dat.SetDefault()
		dat.Type = typ
		dat.Resid = inp.ResidPotential
		dat.ShowR = chk.Verbose
		main := CompareResults(tst, "data/wellfield.json", "data/wellfield.cmp", &dat, 1e-9, 1e-9, 1e-9, chk.Verbose)
		if main == nil {
			return
		}
		CheckBcs(tst, main.Model, 1e-9, chk.Verbose)
	}
}
