// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math/cmplx"
	"strings"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
)

// UniformFlow implements the regional background flow
//
//   Ω(z) = -Q0 exp(-iα) z
//   W(z) =  Q0 exp(-iα)
//
// where Q0 is the magnitude [L²/T] and α the direction [rad]
type UniformFlow struct {
	Base
	Q0 float64 // magnitude
	α  float64 // direction

	// derived
	w complex128 // Q0 exp(-iα)
}

// add element to factory
func init() {
	SetAllocator("uniform", func(edat *inp.ElemData) (Element, error) {
		o := &UniformFlow{Base: Base{Eid: edat.Id}}
		err := o.Init(edat)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}

// NewUniformFlow returns a new uniform flow element
func NewUniformFlow(id int, Q0, α float64) *UniformFlow {
	o := &UniformFlow{Base: Base{Eid: id}, Q0: Q0, α: α}
	o.w = cmplx.Rect(Q0, -α)
	return o
}

// Init initialises uniform flow from element data
func (o *UniformFlow) Init(edat *inp.ElemData) (err error) {
	for _, p := range edat.Prms {
		switch strings.ToLower(p.N) {
		case "q0":
			o.Q0 = p.V
		case "alp", "alpha":
			o.α = p.V
		default:
			return chk.Err("uniform: parameter named %q is incorrect: %w", p.N, ErrInvalidParams)
		}
	}
	o.w = cmplx.Rect(o.Q0, -o.α)
	return
}

// Alpha returns the direction of flow
func (o *UniformFlow) Alpha() float64 { return o.α }

// Potential returns Ω(z)
func (o *UniformFlow) Potential(z complex128) complex128 { return -o.w * z }

// Discharge returns W(z)
func (o *UniformFlow) Discharge(z complex128) complex128 { return o.w }

// Abstraction returns zero
func (o *UniformFlow) Abstraction() float64 { return 0 }

// Divergence returns zero
func (o *UniformFlow) Divergence(z complex128) float64 { return 0 }

// JacPotential returns an empty slice since there are no free parameters
func (o *UniformFlow) JacPotential(z complex128) []complex128 { return []complex128{} }

// JacDischarge returns an empty slice since there are no free parameters
func (o *UniformFlow) JacDischarge(z complex128) []complex128 { return []complex128{} }
