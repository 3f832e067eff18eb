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

// AreaSink implements uniform areal recharge N over a circle of radius R
//
//   outside (|z-z0| ≥ R):  Ω = -N R²/2 ln(z - z0)
//   inside:                Φ = -N/4 (|z-z0|² - R²) - N R²/2 ln(R),  Ψ = NaN
//
// N > 0 adds water to the aquifer; thus Abstraction = -N π R².
type AreaSink struct {
	Base
	Z0   complex128 // center
	R    float64    // radius [L]
	N    float64    // recharge rate [L/T]
	Free bool       // N is a free parameter
}

// add element to factory
func init() {
	SetAllocator("areasink", func(edat *inp.ElemData) (Element, error) {
		o := &AreaSink{Base: Base{Eid: edat.Id}, Z0: edat.Z(), R: -1}
		for _, p := range edat.Prms {
			switch strings.ToLower(p.N) {
			case "r":
				o.R = p.V
			case "n":
				o.N = p.V
			case "free":
				o.Free = p.V > 0
			default:
				return nil, chk.Err("areasink: parameter named %q is incorrect: %w", p.N, ErrInvalidParams)
			}
		}
		if o.R < EPS {
			return nil, chk.Err("areasink %d: R = %g: %w", o.Eid, o.R, ErrInvalidRadius)
		}
		return o, nil
	})
}

// NewAreaSink returns a new circular area sink
func NewAreaSink(id int, z0 complex128, R, N float64, free bool) (o *AreaSink, err error) {
	if R < EPS {
		return nil, chk.Err("areasink %d: R = %g: %w", id, R, ErrInvalidRadius)
	}
	return &AreaSink{Base: Base{Eid: id}, Z0: z0, R: R, N: N, Free: free}, nil
}

// Potential returns Ω(z)
func (o *AreaSink) Potential(z complex128) complex128 {
	return scale(o.unitPotential(z), o.N)
}

// Discharge returns W(z)
func (o *AreaSink) Discharge(z complex128) complex128 {
	return scale(o.unitDischarge(z), o.N)
}

// Abstraction returns -N π R²
func (o *AreaSink) Abstraction() float64 {
	return -o.N * math.Pi * o.R * o.R
}

// Divergence returns N inside the circle and zero outside
func (o *AreaSink) Divergence(z complex128) float64 {
	if cmplx.Abs(z-o.Z0) >= o.R {
		return 0
	}
	return o.N
}

// JacPotential returns ∂Ω/∂N for free area sinks
func (o *AreaSink) JacPotential(z complex128) []complex128 {
	if !o.Free {
		return []complex128{}
	}
	return []complex128{o.unitPotential(z)}
}

// JacDischarge returns ∂W/∂N for free area sinks
func (o *AreaSink) JacDischarge(z complex128) []complex128 {
	if !o.Free {
		return []complex128{}
	}
	return []complex128{o.unitDischarge(z)}
}

// Nprms returns the number of free parameters
func (o *AreaSink) Nprms() int {
	if o.Free {
		return 1
	}
	return 0
}

// FreePrms returns {N} for free area sinks
func (o *AreaSink) FreePrms() []float64 {
	if o.Free {
		return []float64{o.N}
	}
	return nil
}

// SetFreePrms sets N
func (o *AreaSink) SetFreePrms(p []float64) (err error) {
	if !o.Free {
		if len(p) != 0 {
			return chk.Err("areasink %d: recharge is fixed: %w", o.Eid, ErrInvalidParams)
		}
		return
	}
	o.N, err = setOne(p, "areasink")
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// unitPotential returns Ω(z) for N = 1
func (o *AreaSink) unitPotential(z complex128) complex128 {
	zz := z - o.Z0
	R2 := o.R * o.R
	r := cmplx.Abs(zz)
	if r >= o.R {
		return complex(-0.5*R2, 0) * cmplx.Log(zz)
	}
	Φ := -0.25*(r*r-R2) - 0.5*R2*math.Log(o.R)
	return complex(Φ, math.NaN())
}

// unitDischarge returns W(z) for N = 1
func (o *AreaSink) unitDischarge(z complex128) complex128 {
	zz := z - o.Z0
	if cmplx.Abs(zz) >= o.R {
		return complex(0.5*o.R*o.R, 0) / zz
	}
	return 0.5 * cmplx.Conj(zz)
}
