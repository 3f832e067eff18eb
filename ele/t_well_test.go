// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_well01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well01. field")

	w, err := NewWell(1, complex(10, 10), 2*math.Pi, 1)
	if err != nil {
		tst.Errorf("NewWell failed:\n%v", err)
		return
	}

	Ω := w.Potential(complex(10, 20))
	io.Pforan("Ω = %v\n", Ω)
	checkComplex(tst, "Ω(10+20i)", 1e-15, Ω, complex(math.Log(10), math.Pi/2))

	checkComplex(tst, "W(20+10i)", 1e-15, w.Discharge(complex(20, 10)), complex(-0.1, 0))
	// W = -Q/(2π)/(z-z0) = -1/(10i) = +0.1i; flow at the northern point is southward (Qy < 0)
	checkComplex(tst, "W(10+20i)", 1e-15, w.Discharge(complex(10, 20)), complex(0, 0.1))

	chk.Float64(tst, "abstraction", 1e-15, w.Abstraction(), 2*math.Pi)

	for _, z := range []complex128{complex(11, 10), complex(10, 9), complex(25, -3), complex(10.6, 10.8)} {
		if w.Divergence(z) != 0 {
			tst.Errorf("divergence at %v must be exactly zero", z)
		}
	}
	if !math.IsNaN(w.Divergence(complex(10, 10))) {
		tst.Errorf("divergence at the center must be NaN")
	}
	if !math.IsNaN(w.Divergence(complex(10.5, 10))) {
		tst.Errorf("divergence inside the well must be NaN")
	}

	// inside the radius
	checkComplex(tst, "Ω(z0)", 1e-15, w.Potential(complex(10, 10)), complex(0, 0))
	checkComplex(tst, "Ω(inside)", 1e-15, w.Potential(complex(10.3, 10.2)), complex(0, 0))
	checkNaN(tst, "W(z0)", w.Discharge(complex(10, 10)))

	// no free parameters
	chk.Int(tst, "len(JacPotential)", len(w.JacPotential(complex(3, 4))), 0)
	chk.Int(tst, "len(JacDischarge)", len(w.JacDischarge(complex(3, 4))), 0)
	chk.Int(tst, "Nprms", Nprms(w), 0)
	if len(w.Bcs()) != 0 {
		tst.Errorf("fixed well must not have boundary conditions")
	}

	// W = -dΩ/dz
	z := complex(13.3, 7.1)
	checkComplex(tst, "W = -dΩ/dz", 1e-8, w.Discharge(z), -dOmegaDz(w, z, 1e-6))
}

func Test_well02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well02. construction")

	for _, r := range []float64{0, -1, 1e-20} {
		w, err := NewWell(1, 0, 1, r)
		if !errors.Is(err, ErrInvalidRadius) {
			tst.Errorf("NewWell(r=%g) should fail with ErrInvalidRadius. got %v", r, err)
		}
		if w != nil {
			tst.Errorf("NewWell(r=%g) should not return a well", r)
		}
	}

	_, err := New(&inp.ElemData{Id: 3, Type: "well", Prms: dbf.Params{&dbf.P{N: "Q", V: 1}}})
	if !errors.Is(err, ErrInvalidRadius) {
		tst.Errorf("well without radius should fail with ErrInvalidRadius. got %v", err)
	}
	_, err = New(&inp.ElemData{Id: 3, Type: "well", Prms: dbf.Params{&dbf.P{N: "r", V: 1}, &dbf.P{N: "beta", V: 1}}})
	if !errors.Is(err, ErrInvalidParams) {
		tst.Errorf("well with unknown parameter should fail with ErrInvalidParams. got %v", err)
	}
}

func Test_well03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well03. free parameter")

	w, err := NewFreeWell(7, complex(-2, 5), 3.5, 0.25)
	if err != nil {
		tst.Errorf("NewFreeWell failed:\n%v", err)
		return
	}
	chk.Int(tst, "Nprms", w.Nprms(), 1)
	chk.Float64(tst, "Q", 1e-17, w.FreePrms()[0], 3.5)

	z := complex(4, -1)
	jΩ := w.JacPotential(z)
	jW := w.JacDischarge(z)
	zz := z - w.Z0
	checkComplex(tst, "∂Ω/∂Q", 1e-15, jΩ[0], complex(math.Log(abs(zz)), math.Atan2(imag(zz), real(zz)))/complex(2*math.Pi, 0))
	checkComplex(tst, "∂W/∂Q", 1e-15, jW[0], -1/(complex(2*math.Pi, 0)*zz))
	checkJacobians(tst, w, z, 1e-8)

	// inside
	jΩ = w.JacPotential(w.Z0)
	checkComplex(tst, "∂Ω/∂Q inside", 1e-15, jΩ[0], complex(math.Log(0.25)/(2*math.Pi), 0))
	checkNaN(tst, "∂W/∂Q inside", w.JacDischarge(w.Z0)[0])

	// set
	err = w.SetFreePrms([]float64{-8})
	if err != nil {
		tst.Errorf("SetFreePrms failed:\n%v", err)
	}
	chk.Float64(tst, "Q", 1e-17, w.Q, -8)
	err = w.SetFreePrms([]float64{1, 2})
	if !errors.Is(err, ErrInvalidParams) {
		tst.Errorf("SetFreePrms with 2 values should fail. got %v", err)
	}

	// fixed well does not accept parameters
	f, _ := NewWell(8, 0, 1, 1)
	if f.SetFreePrms([]float64{2}) == nil {
		tst.Errorf("fixed well should not accept free parameters")
	}
}

func Test_well04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well04. head-specified well")

	e, err := New(&inp.ElemData{Id: 5, Type: "well", X: 3, Y: 4, Prms: dbf.Params{
		&dbf.P{N: "r", V: 0.5},
		&dbf.P{N: "hw", V: 12},
	}})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	w := e.(*Well)
	if !w.Free {
		tst.Errorf("head-specified well must be free")
	}
	bcs := w.Bcs()
	chk.Int(tst, "number of bcs", len(bcs), 1)
	checkComplex(tst, "bc location", 1e-15, bcs[0].Z, complex(3.5, 4))
	chk.Float64(tst, "bc head", 1e-17, bcs[0].Head, 12)

	hw, _ := NewHeadWell(6, 0, 0.3, 7)
	chk.Int(tst, "Nprms", hw.Nprms(), 1)
	chk.Int(tst, "number of bcs", len(hw.Bcs()), 1)
}

func abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
