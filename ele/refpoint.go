// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"strings"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
)

// ReferencePoint implements a control point with known head. It does not
// contribute to the flow field; it only carries one boundary condition.
type ReferencePoint struct {
	Base
	Z0   complex128 // location
	Head float64    // target head
}

// add element to factory
func init() {
	SetAllocator("refpoint", func(edat *inp.ElemData) (Element, error) {
		o := &ReferencePoint{Base: Base{Eid: edat.Id}, Z0: edat.Z()}
		found := false
		for _, p := range edat.Prms {
			switch strings.ToLower(p.N) {
			case "h", "head":
				o.Head, found = p.V, true
			default:
				return nil, chk.Err("refpoint: parameter named %q is incorrect: %w", p.N, ErrInvalidParams)
			}
		}
		if !found {
			return nil, chk.Err("refpoint %d: head must be given: %w", edat.Id, ErrInvalidParams)
		}
		return o, nil
	})
}

// NewReferencePoint returns a new reference point
func NewReferencePoint(id int, z0 complex128, head float64) *ReferencePoint {
	return &ReferencePoint{Base: Base{Eid: id}, Z0: z0, Head: head}
}

// Potential returns zero; reference points do not contribute to the flow field
func (o *ReferencePoint) Potential(z complex128) complex128 { return 0 }

// Discharge returns zero
func (o *ReferencePoint) Discharge(z complex128) complex128 { return 0 }

// Abstraction returns zero
func (o *ReferencePoint) Abstraction() float64 { return 0 }

// Divergence returns zero
func (o *ReferencePoint) Divergence(z complex128) float64 { return 0 }

// JacPotential returns an empty slice since there are no free parameters
func (o *ReferencePoint) JacPotential(z complex128) []complex128 { return []complex128{} }

// JacDischarge returns an empty slice since there are no free parameters
func (o *ReferencePoint) JacDischarge(z complex128) []complex128 { return []complex128{} }

// Bcs returns the head condition at the reference point
func (o *ReferencePoint) Bcs() []Bc {
	return []Bc{{Z: o.Z0, Head: o.Head}}
}
