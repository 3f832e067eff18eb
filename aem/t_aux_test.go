// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"testing"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/goaem/mdl/geology"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newGeo returns the aquifer used in all tests: K=10, n=0.25, H=20, b=0
func newGeo(tst *testing.T) *geology.Model {
	geo, err := geology.New(10, 0.25, 20, 0)
	require.NoError(tst, err)
	return geo
}

// newSolverData returns solver data with defaults and the given type
func newSolverData(tst *testing.T, typ, resid string) *inp.SolverData {
	var dat inp.SolverData
	dat.SetDefault()
	dat.Type, dat.Resid = typ, resid
	require.NoError(tst, dat.PostProcess())
	return &dat
}
