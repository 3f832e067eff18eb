// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geology implements the aquifer properties model and the conversion
// between piezometric head and discharge potential
//  References:
//   [1] Strack ODL (1989) Groundwater Mechanics, Prentice-Hall, 732 pp
//   [2] Strack ODL (2017) Analytical Groundwater Mechanics, Cambridge University Press, 454 pp
package geology

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// machine epsilon used to validate strictly positive properties
const EPS = 2.220446049250313e-16

// sentinel errors
var (
	ErrInvalidConductivity = chk.Err("hydraulic conductivity must be strictly positive")
	ErrInvalidPorosity     = chk.Err("porosity must be strictly positive and less than 1")
	ErrInvalidThickness    = chk.Err("aquifer thickness must be strictly positive")
	ErrInvalidHead         = chk.Err("head below the base of the aquifer")
	ErrInvalidPotential    = chk.Err("discharge potential must be non-negative")
)

// Model implements a homogeneous and isotropic aquifer
//
//   ──────────────────── top = b + H
//      K, n                 h ≥ b + H  ⇒  confined:   Φ = K H (h - b) - ½ K H²
//                           b ≤ h < b + H ⇒ unconfined: Φ = ½ K (h - b)²
//   ──────────────────── base = b
//
// The location z is accepted by all functions to allow for piecewise
// constant properties; the homogeneous model ignores it.
type Model struct {
	K float64 // hydraulic conductivity [L/T]
	N float64 // porosity [-]
	H float64 // aquifer thickness [L]
	B float64 // base elevation [L]
}

// New returns a new geology model
func New(K, porosity, thickness, base float64) (o *Model, err error) {
	o = new(Model)
	err = o.Init(dbf.Params{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "n", V: porosity},
		&dbf.P{N: "H", V: thickness},
		&dbf.P{N: "b", V: base},
	})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *Model) Init(prms dbf.Params) (err error) {
	o.K, o.N, o.H, o.B = -1, -1, -1, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K = p.V
		case "n", "porosity":
			o.N = p.V
		case "h", "thickness":
			o.H = p.V
		case "b", "base":
			o.B = p.V
		default:
			return chk.Err("geology: parameter named %q is incorrect", p.N)
		}
	}
	if o.K < EPS {
		return chk.Err("geology: K = %g is invalid: %w", o.K, ErrInvalidConductivity)
	}
	if o.N < EPS || o.N >= 1 {
		return chk.Err("geology: n = %g is invalid: %w", o.N, ErrInvalidPorosity)
	}
	if o.H < EPS {
		return chk.Err("geology: H = %g is invalid: %w", o.H, ErrInvalidThickness)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "K", V: 10.0},  // [m/d]
			&dbf.P{N: "n", V: 0.25},  // [-]
			&dbf.P{N: "H", V: 20.0},  // [m]
			&dbf.P{N: "b", V: 100.0}, // [m]
		}
	}
	return dbf.Params{
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "n", V: o.N},
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "b", V: o.B},
	}
}

// Properties returns the aquifer properties at z
func (o Model) Properties(z complex128) (K, porosity, thickness, base float64) {
	return o.K, o.N, o.H, o.B
}

// HeadToPotential converts head into discharge potential Φ
func (o Model) HeadToPotential(head float64, z complex128) (Φ float64, err error) {
	K, _, H, b := o.Properties(z)
	if head >= b+H {
		return K*H*(head-b) - 0.5*K*H*H, nil
	}
	if head >= b {
		return 0.5 * K * (head - b) * (head - b), nil
	}
	return math.NaN(), chk.Err("head = %g < base = %g: %w", head, b, ErrInvalidHead)
}

// PotentialToHead converts discharge potential Φ into head
func (o Model) PotentialToHead(Φ float64, z complex128) (head float64, err error) {
	if math.IsNaN(Φ) {
		return math.NaN(), chk.Err("Φ is not a number: %w", ErrInvalidPotential)
	}
	if Φ < 0 {
		return math.NaN(), chk.Err("Φ = %g < 0: %w", Φ, ErrInvalidPotential)
	}
	K, _, H, b := o.Properties(z)
	if Φ >= 0.5*K*H*H {
		return (Φ+0.5*K*H*H)/(K*H) + b, nil
	}
	return b + math.Sqrt(2.0*Φ/K), nil
}

// DheadDpotential returns dh/dΦ at Φ
//  Note: the derivative is infinite at Φ = 0 (dry aquifer)
func (o Model) DheadDpotential(Φ float64, z complex128) (dhdΦ float64, err error) {
	if math.IsNaN(Φ) || Φ < 0 {
		return math.NaN(), chk.Err("Φ = %g: %w", Φ, ErrInvalidPotential)
	}
	K, _, H, _ := o.Properties(z)
	if Φ >= 0.5*K*H*H {
		return 1.0 / (K * H), nil
	}
	return 1.0 / math.Sqrt(2.0*K*Φ), nil
}

// Confined tells whether the aquifer is confined at the given head
func (o Model) Confined(head float64, z complex128) bool {
	_, _, H, b := o.Properties(z)
	return head >= b+H
}
