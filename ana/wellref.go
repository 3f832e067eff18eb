// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// WellRef computes the solution to a single well in an infinite aquifer
// whose discharge is found from the head at a reference point
//
//        well (Q = ?)               reference point
//          ●  ─────────── d ─────────── ×  h = h*
//   ──────────────────────────────────────────────  top  = b + H
//                K
//   ──────────────────────────────────────────────  base = b
//
//   Φ(ρ) = Q/(2π) ln(ρ)   ⇒   Q = 2π Φ(h*) / ln(d)
type WellRef struct {
	// input
	K  float64 // hydraulic conductivity
	H  float64 // aquifer thickness
	B  float64 // base elevation
	D  float64 // distance between well and reference point
	Hr float64 // head at reference point

	// derived
	Φr float64 // discharge potential at reference point
	Q  float64 // discharge of well
}

// Init initialises this structure
func (o *WellRef) Init(prms dbf.Params) {

	// default values
	o.K = 10.0
	o.H = 20.0
	o.B = 0.0
	o.D = 100.0
	o.Hr = 25.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "H":
			o.H = p.V
		case "b":
			o.B = p.V
		case "d":
			o.D = p.V
		case "h":
			o.Hr = p.V
		}
	}

	// derived
	φ := o.Hr - o.B
	if φ >= o.H {
		o.Φr = o.K*o.H*φ - 0.5*o.K*o.H*o.H
	} else {
		o.Φr = 0.5 * o.K * φ * φ
	}
	o.Q = 2.0 * math.Pi * o.Φr / math.Log(o.D)
}

// Head computes the head at distance ρ from the well (ρ > 1 such that Φ > 0)
func (o WellRef) Head(ρ float64) float64 {
	Φ := o.Q / (2.0 * math.Pi) * math.Log(ρ)
	if Φ >= 0.5*o.K*o.H*o.H {
		return (Φ+0.5*o.K*o.H*o.H)/(o.K*o.H) + o.B
	}
	return o.B + math.Sqrt(2.0*Φ/o.K)
}

// CheckQ checks the discharge of well
func (o WellRef) CheckQ(tst *testing.T, Q, tol float64) {
	chk.Float64(tst, "Q", tol, Q, o.Q)
}

// CheckHead checks the head at distance ρ
func (o WellRef) CheckHead(tst *testing.T, h, ρ, tol float64) {
	chk.Float64(tst, "h", tol, h, o.Head(ρ))
}
