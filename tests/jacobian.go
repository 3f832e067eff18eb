// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/goaem/aem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// Jac helps on checking the stacked Jacobians of a model
type Jac struct {
	Tst  *testing.T // testing structure
	Tol  float64    // tolerance to compare derivatives
	Step float64    // step for central differences
	Verb bool       // verbose: show results
}

// Check compares ∂Ω/∂p and ∂W/∂p at z with central finite differences on all free parameters
func (o Jac) Check(m *aem.Model, z complex128) {
	if o.Step < 1e-14 {
		o.Step = 1e-6
	}
	jΩ, err := m.JacPotential(z)
	if err != nil {
		o.Tst.Errorf("Jac: JacPotential failed:\n%v", err)
		return
	}
	jW, err := m.JacDischarge(z)
	if err != nil {
		o.Tst.Errorf("Jac: JacDischarge failed:\n%v", err)
		return
	}
	p := m.FreePrms()
	chk.Int(o.Tst, "len(∂Ω/∂p)", len(jΩ), len(p))
	chk.Int(o.Tst, "len(∂W/∂p)", len(jW), len(p))
	if len(jΩ) != len(p) || len(jW) != len(p) {
		return
	}
	settings := &fd.Settings{Formula: fd.Central, Step: o.Step}
	for j, c := range m.Columns() {
		pj := p[j]
		deriv := func(fcn func() float64) (res float64) {
			res = fd.Derivative(func(x float64) float64 {
				p[j] = x
				o.set(m, p)
				return fcn()
			}, pj, settings)
			p[j] = pj
			o.set(m, p)
			return
		}
		label := io.Sf("@ %v (element %d, prm %d)", z, c.Eid, c.Idx)
		dΦ := deriv(func() float64 { return real(m.Potential(z)) })
		dQx := deriv(func() float64 { return real(m.Discharge(z)) })
		dQy := deriv(func() float64 { return -imag(m.Discharge(z)) })
		chk.AnaNum(o.Tst, "∂Φ/∂p "+label, o.Tol, real(jΩ[j]), dΦ, o.Verb)
		chk.AnaNum(o.Tst, "∂Qx/∂p "+label, o.Tol, real(jW[j]), dQx, o.Verb)
		chk.AnaNum(o.Tst, "∂Qy/∂p "+label, o.Tol, -imag(jW[j]), dQy, o.Verb)
	}
}

func (o Jac) set(m *aem.Model, p []float64) {
	err := m.SetFreePrms(p)
	if err != nil {
		chk.Panic("Jac: cannot set free parameters:\n%v", err)
	}
}
