// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements analytic elements
//  Notation:
//   z = x + i y       -- complex coordinate [L]
//   Ω(z) = Φ + i Ψ    -- complex potential [L³/T]; Φ: discharge potential, Ψ: stream function
//   W(z) = Qx - i Qy  -- complex discharge [L²/T]; W = -dΩ/dz
//  Undefined components are returned as NaN; evaluation never fails.
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// sentinel errors
var (
	ErrInvalidRadius = chk.Err("radius must be strictly positive")
	ErrInvalidParams = chk.Err("invalid element parameters")
	ErrUnknownType   = chk.Err("unknown element type")
)

// machine epsilon used to validate strictly positive lengths
const EPS = 2.220446049250313e-16

// Element defines what all analytic elements must implement
type Element interface {

	// information
	Id() int // returns the element Id

	// field contributions
	Potential(z complex128) complex128 // returns Ω(z)
	Discharge(z complex128) complex128 // returns W(z)
	Abstraction() float64              // returns the net rate removed from the aquifer [L³/T]
	Divergence(z complex128) float64   // returns the divergence of the discharge (accretion) [L/T]

	// sensitivities w.r.t free parameters; empty if there are none
	JacPotential(z complex128) []complex128 // returns ∂Ω/∂p[i]
	JacDischarge(z complex128) []complex128 // returns ∂W/∂p[i]

	// participation
	Activate()      // activates element
	Deactivate()    // deactivates element
	IsActive() bool // tells whether element is active or not
}

// WithFreePrms defines elements with parameters to be solved for
type WithFreePrms interface {
	Nprms() int                   // number of free parameters
	FreePrms() []float64          // current values of free parameters
	SetFreePrms(p []float64) error // sets free parameters
}

// WithBcs defines elements carrying boundary conditions; e.g. control points
type WithBcs interface {
	Bcs() []Bc // boundary conditions
}

// Bc holds a boundary condition stating that the head at Z must be equal to Head
type Bc struct {
	Z    complex128 // location
	Head float64    // target head
}

// Base holds data common to all elements
type Base struct {
	Eid   int  // element id
	Inact bool // inactive element
}

// Id returns the element Id
func (o *Base) Id() int { return o.Eid }

// Activate activates element
func (o *Base) Activate() { o.Inact = false }

// Deactivate deactivates element
func (o *Base) Deactivate() { o.Inact = true }

// IsActive tells whether element is active or not
func (o *Base) IsActive() bool { return !o.Inact }

// Nprms returns the number of free parameters of any element
func Nprms(e Element) int {
	if f, ok := e.(WithFreePrms); ok {
		return f.Nprms()
	}
	return 0
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// nan returns a complex number with NaN components
func nan() complex128 {
	return complex(math.NaN(), math.NaN())
}

// scale multiplies both components of c by s; unlike complex(s,0)*c, NaN components do not leak
func scale(c complex128, s float64) complex128 {
	return complex(s*real(c), s*imag(c))
}

// setOne checks and returns the single free parameter in p
func setOne(p []float64, name string) (v float64, err error) {
	if len(p) != 1 {
		return 0, chk.Err("%s: 1 free parameter is required. %d given: %w", name, len(p), ErrInvalidParams)
	}
	return p[0], nil
}
