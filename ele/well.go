// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"math/cmplx"
	"strings"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
)

// Well implements a point sink (Q > 0) or source (Q < 0) with finite radius
//
//   Ω(z) = Q/(2π) ln(z - z0)   if |z - z0| ≥ r
//   Ω(z) = Q/(2π) ln(r)        otherwise
//
// The discharge Q is fixed, unless the well is free. A free well may also
// carry a boundary condition specifying the head at the well screen.
type Well struct {
	Base
	Z0 complex128 // center
	Q  float64    // discharge [L³/T]
	R  float64    // radius [L]

	// free parameter and head condition
	Free  bool    // Q is a free parameter
	Hw    float64 // head at well screen; only if HasHw
	HasHw bool    // well carries a head condition
}

// add element to factory
func init() {
	SetAllocator("well", func(edat *inp.ElemData) (Element, error) {
		o := &Well{Base: Base{Eid: edat.Id}, Z0: edat.Z()}
		err := o.Init(edat)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}

// NewWell returns a new well with fixed discharge
func NewWell(id int, z0 complex128, Q, r float64) (o *Well, err error) {
	if r < EPS {
		return nil, chk.Err("well %d: r = %g: %w", id, r, ErrInvalidRadius)
	}
	return &Well{Base: Base{Eid: id}, Z0: z0, Q: Q, R: r}, nil
}

// NewFreeWell returns a new well whose discharge is solved for; Qini is the initial guess
func NewFreeWell(id int, z0 complex128, Qini, r float64) (o *Well, err error) {
	o, err = NewWell(id, z0, Qini, r)
	if err != nil {
		return nil, err
	}
	o.Free = true
	return
}

// NewHeadWell returns a new free well with specified head at the well screen
func NewHeadWell(id int, z0 complex128, r, hw float64) (o *Well, err error) {
	o, err = NewFreeWell(id, z0, 0, r)
	if err != nil {
		return nil, err
	}
	o.Hw, o.HasHw = hw, true
	return
}

// Init initialises well from element data
func (o *Well) Init(edat *inp.ElemData) (err error) {
	o.R = -1
	for _, p := range edat.Prms {
		switch strings.ToLower(p.N) {
		case "q":
			o.Q = p.V
		case "r":
			o.R = p.V
		case "free":
			o.Free = p.V > 0
		case "hw":
			o.Hw, o.HasHw = p.V, true
		default:
			return chk.Err("well: parameter named %q is incorrect: %w", p.N, ErrInvalidParams)
		}
	}
	if o.R < EPS {
		return chk.Err("well %d: r = %g: %w", o.Eid, o.R, ErrInvalidRadius)
	}
	if o.HasHw {
		o.Free = true
	}
	return
}

// Potential returns Ω(z)
func (o *Well) Potential(z complex128) complex128 {
	zz := z - o.Z0
	if cmplx.Abs(zz) >= o.R {
		return complex(o.Q/(2.0*math.Pi), 0) * cmplx.Log(zz)
	}
	return complex(o.Q/(2.0*math.Pi)*math.Log(o.R), 0)
}

// Discharge returns W(z); NaN inside the well
func (o *Well) Discharge(z complex128) complex128 {
	zz := z - o.Z0
	if cmplx.Abs(zz) >= o.R {
		return complex(-o.Q/(2.0*math.Pi), 0) / zz
	}
	return nan()
}

// Abstraction returns Q
func (o *Well) Abstraction() float64 {
	return o.Q
}

// Divergence returns zero outside the well and NaN inside
func (o *Well) Divergence(z complex128) float64 {
	if cmplx.Abs(z-o.Z0) >= o.R {
		return 0
	}
	return math.NaN()
}

// JacPotential returns ∂Ω/∂Q for free wells
func (o *Well) JacPotential(z complex128) []complex128 {
	if !o.Free {
		return []complex128{}
	}
	zz := z - o.Z0
	if cmplx.Abs(zz) >= o.R {
		return []complex128{cmplx.Log(zz) / complex(2.0*math.Pi, 0)}
	}
	return []complex128{complex(math.Log(o.R)/(2.0*math.Pi), 0)}
}

// JacDischarge returns ∂W/∂Q for free wells
func (o *Well) JacDischarge(z complex128) []complex128 {
	if !o.Free {
		return []complex128{}
	}
	zz := z - o.Z0
	if cmplx.Abs(zz) >= o.R {
		return []complex128{-1.0 / (complex(2.0*math.Pi, 0) * zz)}
	}
	return []complex128{nan()}
}

// Nprms returns the number of free parameters
func (o *Well) Nprms() int {
	if o.Free {
		return 1
	}
	return 0
}

// FreePrms returns {Q} for free wells
func (o *Well) FreePrms() []float64 {
	if o.Free {
		return []float64{o.Q}
	}
	return nil
}

// SetFreePrms sets Q
func (o *Well) SetFreePrms(p []float64) (err error) {
	if !o.Free {
		if len(p) != 0 {
			return chk.Err("well %d: discharge is fixed: %w", o.Eid, ErrInvalidParams)
		}
		return
	}
	o.Q, err = setOne(p, "well")
	return
}

// Bcs returns the head condition at the well screen, if any
func (o *Well) Bcs() []Bc {
	if !o.HasHw {
		return nil
	}
	return []Bc{{Z: o.Z0 + complex(o.R, 0), Head: o.Hw}}
}
