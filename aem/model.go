// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aem implements the superposition of analytic elements and the
// solution of the boundary-condition equations for their free parameters
package aem

import (
	"github.com/cpmech/goaem/ele"
	"github.com/cpmech/goaem/mdl/geology"
	"github.com/cpmech/gosl/chk"
)

// Model holds the aquifer and an ordered list of analytic elements.
//  Notes:
//   1) the order of Elems defines the ordering of columns in the global Jacobian
//   2) Columns and Bcs are computed on every call; they are never cached,
//      thus adding, removing or (de)activating elements is always seen
//   3) the model must not be modified or evaluated concurrently with a solve
type Model struct {
	Geo   *geology.Model // aquifer properties
	Elems []ele.Element  // all elements, active or not
}

// Column maps a column of the global Jacobian to an element's free parameter
type Column struct {
	Eid  int         // element id
	Elem ele.Element // element
	Idx  int         // index of parameter in element's list of free parameters
}

// BcRef holds a boundary condition and its owner
type BcRef struct {
	ele.Bc
	Eid int // id of element carrying the boundary condition
}

// NewModel returns a new model
func NewModel(geo *geology.Model, elems ...ele.Element) (o *Model, err error) {
	if geo == nil {
		return nil, chk.Err("geology model must be given")
	}
	o = &Model{Geo: geo}
	for _, e := range elems {
		err = o.Add(e)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Add appends element to model
func (o *Model) Add(e ele.Element) (err error) {
	if e == nil {
		return chk.Err("cannot add nil element")
	}
	if o.Find(e.Id()) != nil {
		return chk.Err("element with id = %d exists already", e.Id())
	}
	o.Elems = append(o.Elems, e)
	return
}

// Remove removes element with given id; returns false if it does not exist
func (o *Model) Remove(id int) bool {
	for i, e := range o.Elems {
		if e.Id() == id {
			o.Elems = append(o.Elems[:i], o.Elems[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns element with given id or nil
func (o *Model) Find(id int) ele.Element {
	for _, e := range o.Elems {
		if e.Id() == id {
			return e
		}
	}
	return nil
}

// Potential returns the total complex potential Ω(z)
func (o *Model) Potential(z complex128) (Ω complex128) {
	for _, e := range o.Elems {
		if e.IsActive() {
			Ω += e.Potential(z)
		}
	}
	return
}

// Discharge returns the total complex discharge W(z)
func (o *Model) Discharge(z complex128) (W complex128) {
	for _, e := range o.Elems {
		if e.IsActive() {
			W += e.Discharge(z)
		}
	}
	return
}

// Abstraction returns the total abstraction; used as a global mass balance check
func (o *Model) Abstraction() (Q float64) {
	for _, e := range o.Elems {
		if e.IsActive() {
			Q += e.Abstraction()
		}
	}
	return
}

// Divergence returns the total divergence of the discharge at z
func (o *Model) Divergence(z complex128) (div float64) {
	for _, e := range o.Elems {
		if e.IsActive() {
			div += e.Divergence(z)
		}
	}
	return
}

// Head returns the head at z computed from the discharge potential
func (o *Model) Head(z complex128) (h float64, err error) {
	return o.Geo.PotentialToHead(real(o.Potential(z)), z)
}

// Columns returns the mapping of global Jacobian columns to (element, parameter)
func (o *Model) Columns() (cols []Column) {
	for _, e := range o.Elems {
		if !e.IsActive() {
			continue
		}
		for i := 0; i < ele.Nprms(e); i++ {
			cols = append(cols, Column{Eid: e.Id(), Elem: e, Idx: i})
		}
	}
	return
}

// Nprms returns the current number of free parameters
func (o *Model) Nprms() (n int) {
	for _, e := range o.Elems {
		if e.IsActive() {
			n += ele.Nprms(e)
		}
	}
	return
}

// Bcs returns all boundary conditions of active elements
func (o *Model) Bcs() (bcs []BcRef) {
	for _, e := range o.Elems {
		if !e.IsActive() {
			continue
		}
		if b, ok := e.(ele.WithBcs); ok {
			for _, bc := range b.Bcs() {
				bcs = append(bcs, BcRef{bc, e.Id()})
			}
		}
	}
	return
}

// JacPotential returns the stacked ∂Ω/∂p at z, ordered as in Columns
func (o *Model) JacPotential(z complex128) (jac []complex128, err error) {
	return o.stack(z, func(e ele.Element) []complex128 { return e.JacPotential(z) })
}

// JacDischarge returns the stacked ∂W/∂p at z, ordered as in Columns
func (o *Model) JacDischarge(z complex128) (jac []complex128, err error) {
	return o.stack(z, func(e ele.Element) []complex128 { return e.JacDischarge(z) })
}

// FreePrms returns the stacked free parameters, ordered as in Columns
func (o *Model) FreePrms() (p []float64) {
	p = make([]float64, 0, o.Nprms())
	for _, e := range o.Elems {
		if !e.IsActive() {
			continue
		}
		if f, ok := e.(ele.WithFreePrms); ok {
			p = append(p, f.FreePrms()...)
		}
	}
	return
}

// SetFreePrms distributes the stacked free parameters p to the elements
func (o *Model) SetFreePrms(p []float64) (err error) {
	if len(p) != o.Nprms() {
		return chk.Err("number of parameters is incorrect. %d != %d", len(p), o.Nprms())
	}
	k := 0
	for _, e := range o.Elems {
		n := ele.Nprms(e)
		if !e.IsActive() || n == 0 {
			continue
		}
		err = e.(ele.WithFreePrms).SetFreePrms(p[k : k+n])
		if err != nil {
			return chk.Err("cannot set parameters of element %d:\n%v", e.Id(), err)
		}
		k += n
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// stack concatenates the Jacobians of active elements checking their dimensions
func (o *Model) stack(z complex128, jac func(e ele.Element) []complex128) (res []complex128, err error) {
	res = make([]complex128, 0, o.Nprms())
	for _, e := range o.Elems {
		if !e.IsActive() {
			continue
		}
		j := jac(e)
		if len(j) != ele.Nprms(e) {
			return nil, chk.Err("element %d returned %d derivatives but has %d free parameters", e.Id(), len(j), ele.Nprms(e))
		}
		res = append(res, j...)
	}
	return
}
