// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aem

import (
	"math"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// system holds the boundary-condition equations r(p) = 0 of a model
//
//   head residuals:       r[i] = h(Re Ω(z[i])) - h*[i]
//   potential residuals:  r[i] = Re Ω(z[i]) - Φ(h*[i])
//
//   J[i][j] = ∂r[i]/∂p[j] = dh/dΦ · Re ∂Ω(z[i])/∂p[j]   (dh/dΦ = 1 for potential residuals)
type system struct {
	m     *Model     // model
	resid string     // residual kind
	bcs   []BcRef    // boundary conditions (rows)
	cols  []Column   // free parameters (columns)
	neq   int        // number of equations
	nprm  int        // number of unknowns
	Φstar []float64  // target potentials; only for potential residuals
	scale float64    // 1 + max|target|; scales the tolerance on residuals
	r     []float64  // residual vector
	J     *mat.Dense // Jacobian matrix; nil if neq == 0 or nprm == 0
}

// newSystem allocates the system for the current state of the model
func newSystem(m *Model, resid string) (o *system, err error) {
	o = &system{m: m, resid: resid, bcs: m.Bcs(), cols: m.Columns()}
	o.neq, o.nprm = len(o.bcs), len(o.cols)
	o.r = make([]float64, o.neq)
	var largest float64
	for _, bc := range o.bcs {
		largest = math.Max(largest, math.Abs(bc.Head))
	}
	if resid == inp.ResidPotential {
		o.Φstar = make([]float64, o.neq)
		largest = 0
		for i, bc := range o.bcs {
			o.Φstar[i], err = m.Geo.HeadToPotential(bc.Head, bc.Z)
			if err != nil {
				return nil, chk.Err("target head of element %d is invalid:\n%w", bc.Eid, err)
			}
			largest = math.Max(largest, math.Abs(o.Φstar[i]))
		}
	}
	o.scale = 1.0 + largest
	if o.neq > 0 && o.nprm > 0 {
		o.J = mat.NewDense(o.neq, o.nprm, nil)
	}
	return
}

// residual computes r
func (o *system) residual() (err error) {
	for i, bc := range o.bcs {
		Φ := real(o.m.Potential(bc.Z))
		if o.resid == inp.ResidPotential {
			o.r[i] = Φ - o.Φstar[i]
		} else {
			h, e := o.m.Geo.PotentialToHead(Φ, bc.Z)
			if e != nil {
				return chk.Err("cannot compute head at control point of element %d:\n%w", bc.Eid, e)
			}
			o.r[i] = h - bc.Head
		}
		if math.IsNaN(o.r[i]) || math.IsInf(o.r[i], 0) {
			return chk.Err("residual of element %d is %g: %w", bc.Eid, o.r[i], ErrNotFinite)
		}
	}
	return
}

// jacobian computes J
func (o *system) jacobian() (err error) {
	if o.J == nil {
		return
	}
	for i, bc := range o.bcs {
		jac, e := o.m.JacPotential(bc.Z)
		if e != nil {
			return e
		}
		factor := 1.0
		if o.resid == inp.ResidHead {
			factor, e = o.m.Geo.DheadDpotential(real(o.m.Potential(bc.Z)), bc.Z)
			if e != nil {
				return chk.Err("cannot compute dh/dΦ at control point of element %d:\n%w", bc.Eid, e)
			}
		}
		for j := 0; j < o.nprm; j++ {
			v := real(jac[j])
			if v != 0 {
				v *= factor // zero sensitivities stay zero even if dh/dΦ is infinite
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("J[%d][%d] = %g (element %d): %w", i, j, v, bc.Eid, ErrNotFinite)
			}
			o.J.Set(i, j, v)
		}
	}
	return
}

// converged tells whether max|r| satisfies the tolerance
func (o *system) converged(rnorm, tol float64) bool {
	return rnorm < tol*o.scale
}

// small tells whether max|δp| satisfies the tolerance
func small(δ, p []float64, tol float64) bool {
	if len(δ) == 0 {
		return false
	}
	return floats.Norm(δ, math.Inf(1)) < tol*(1.0+floats.Norm(p, math.Inf(1)))
}

// linear solvers /////////////////////////////////////////////////////////////////////////////////

// solveLU solves J δ = -r for square J
func solveLU(J *mat.Dense, r []float64, eps float64) (δ []float64, err error) {
	var lu mat.LU
	lu.Factorize(J)
	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond*eps > 1 {
		return nil, chk.Err("condition number = %g: %w", cond, ErrSingularSystem)
	}
	var x mat.VecDense
	err = lu.SolveVecTo(&x, false, negative(r))
	if err != nil {
		return nil, chk.Err("%v: %w", err, ErrSingularSystem)
	}
	return vector(&x)
}

// solveQR solves min ‖J δ + r‖ for J with at least as many rows as columns
func solveQR(J *mat.Dense, r []float64) (δ []float64, err error) {
	var qr mat.QR
	qr.Factorize(J)
	var x mat.VecDense
	err = qr.SolveVecTo(&x, false, negative(r))
	if err != nil {
		return nil, chk.Err("%v: %w", err, ErrSingularSystem)
	}
	return vector(&x)
}

// negative returns -r as a vector
func negative(r []float64) *mat.VecDense {
	rhs := mat.NewVecDense(len(r), nil)
	rhs.ScaleVec(-1, mat.NewVecDense(len(r), r))
	return rhs
}

// vector copies x into a slice checking for non-finite values
func vector(x *mat.VecDense) (δ []float64, err error) {
	δ = make([]float64, x.Len())
	for i := range δ {
		δ[i] = x.AtVec(i)
		if math.IsNaN(δ[i]) || math.IsInf(δ[i], 0) {
			return nil, chk.Err("δp[%d] = %g: %w", i, δ[i], ErrSingularSystem)
		}
	}
	return
}

// diagnose records the rank and the zero rows and columns of a singular J
func diagnose(J *mat.Dense, rep *Report) {
	if J == nil {
		return
	}
	nr, nc := J.Dims()
	thr := 1e-14 * mat.Norm(J, math.Inf(1))
	rep.ZeroR, rep.ZeroC = []int{}, []int{}
	for i := 0; i < nr; i++ {
		if floats.Norm(J.RawRowView(i), math.Inf(1)) <= thr {
			rep.ZeroR = append(rep.ZeroR, i)
		}
	}
	col := make([]float64, nr)
	for j := 0; j < nc; j++ {
		mat.Col(col, j, J)
		if floats.Norm(col, math.Inf(1)) <= thr {
			rep.ZeroC = append(rep.ZeroC, j)
		}
	}
	var svd mat.SVD
	if svd.Factorize(J, mat.SVDNone) {
		rep.Rank = svd.Rank(1e-12)
	}
}
