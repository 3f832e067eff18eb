// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkComplex compares complex numbers by components
func checkComplex(tst *testing.T, msg string, tol float64, res, correct complex128) {
	chk.Float64(tst, msg+" (real)", tol, real(res), real(correct))
	chk.Float64(tst, msg+" (imag)", tol, imag(res), imag(correct))
}

// checkNaN checks that both components are NaN
func checkNaN(tst *testing.T, msg string, res complex128) {
	if !math.IsNaN(real(res)) || !math.IsNaN(imag(res)) {
		tst.Errorf("%s: NaN expected. got %v", msg, res)
	}
}

// checkJacobians compares analytical Jacobians with central finite differences on the free parameters
func checkJacobians(tst *testing.T, e Element, z complex128, tol float64) {
	f, ok := e.(WithFreePrms)
	if !ok {
		return
	}
	p := f.FreePrms()
	jΩ := e.JacPotential(z)
	jW := e.JacDischarge(z)
	chk.Int(tst, "len(JacPotential)", len(jΩ), f.Nprms())
	chk.Int(tst, "len(JacDischarge)", len(jW), f.Nprms())
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}
	for i := range p {
		deriv := func(fcn func() float64) (res float64) {
			q := append([]float64{}, p...)
			res = fd.Derivative(func(x float64) float64 {
				q[i] = x
				f.SetFreePrms(q)
				return fcn()
			}, p[i], settings)
			f.SetFreePrms(p)
			return
		}
		dΦ := deriv(func() float64 { return real(e.Potential(z)) })
		dQx := deriv(func() float64 { return real(e.Discharge(z)) })
		dW := deriv(func() float64 { return imag(e.Discharge(z)) })
		chk.AnaNum(tst, io.Sf("∂Φ/∂p%d", i), tol, real(jΩ[i]), dΦ, chk.Verbose)
		chk.AnaNum(tst, io.Sf("∂Qx/∂p%d", i), tol, real(jW[i]), dQx, chk.Verbose)
		chk.AnaNum(tst, io.Sf("∂Qy/∂p%d", i), tol, imag(jW[i]), dW, chk.Verbose)
	}
}

// dOmegaDz returns dΩ/dz = ∂Φ/∂x + i ∂Ψ/∂x computed with central finite differences
func dOmegaDz(e Element, z complex128, h float64) complex128 {
	settings := &fd.Settings{Formula: fd.Central, Step: h}
	y := imag(z)
	dΦ := fd.Derivative(func(x float64) float64 { return real(e.Potential(complex(x, y))) }, real(z), settings)
	dΨ := fd.Derivative(func(x float64) float64 { return imag(e.Potential(complex(x, y))) }, real(z), settings)
	return complex(dΦ, dΨ)
}
