// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"testing"

	"github.com/cpmech/goaem/ana"
	"github.com/cpmech/goaem/ele"
	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. well and reference point from file")

	mn, err := NewMain("../inp/data/wellref.json", chk.Verbose)
	require.NoError(tst, err)
	chk.Int(tst, "number of elements", len(mn.Model.Elems), 3)
	chk.Int(tst, "number of unknowns", mn.Model.Nprms(), 1)
	require.False(tst, mn.Model.Find(3).IsActive())

	err = mn.Run()
	require.NoError(tst, err)
	io.Pf("%v", mn.Report)
	require.Equal(tst, Converged, mn.Report.Status)
	require.Equal(tst, inp.SolverNewton, mn.Report.Mode)

	var sol ana.WellRef
	sol.Init(dbf.Params{&dbf.P{N: "h", V: 25}})
	w := mn.Model.Find(1).(*ele.Well)
	sol.CheckQ(tst, w.Q, 1e-8*sol.Q)

	_, err = NewMain("../inp/data/nonexistent.json", false)
	require.Error(tst, err)
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02. simulation built in code")

	sim := &inp.Simulation{
		Geology: dbf.Params{
			&dbf.P{N: "k", V: 10},
			&dbf.P{N: "porosity", V: 0.25},
			&dbf.P{N: "thickness", V: 20},
			&dbf.P{N: "base", V: 0},
		},
		Elements: []*inp.ElemData{
			{Id: 1, Type: "well", Prms: dbf.Params{&dbf.P{N: "q", V: 0}, &dbf.P{N: "r", V: 0.1}, &dbf.P{N: "free", V: 1}}},
			{Id: 2, Type: "refpoint", X: 100, Prms: dbf.Params{&dbf.P{N: "h", V: 25}}},
		},
	}
	sim.Solver.SetDefault()
	require.NoError(tst, sim.PostProcess())

	mn, err := NewMainSim(sim, false)
	require.NoError(tst, err)
	require.NoError(tst, mn.Run())
	chk.Int(tst, "iterations", mn.Report.It, 1)

	// errors
	sim.Elements = append(sim.Elements, &inp.ElemData{Id: 3, Type: "lake"})
	_, err = NewMainSim(sim, false)
	require.ErrorIs(tst, err, ele.ErrUnknownType)

	sim.Elements = sim.Elements[:2]
	sim.Geology = dbf.Params{&dbf.P{N: "K", V: -1}, &dbf.P{N: "H", V: 20}}
	_, err = NewMainSim(sim, false)
	require.Error(tst, err)
}
