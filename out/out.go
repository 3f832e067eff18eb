// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of analytic element results: tables along
// grids and profiles, extreme values and files
package out

import (
	"bytes"
	"math"
	"math/cmplx"

	"github.com/cpmech/goaem/aem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Profile evaluates the model at n points along the segment from za to zb.
// It returns the distances from za and the field; see aem.Model.Field
func Profile(m *aem.Model, za, zb complex128, n, nworkers int) (s []float64, f *aem.Field, err error) {
	if n < 2 {
		return nil, nil, chk.Err("profile requires at least 2 points. n = %d is invalid", n)
	}
	L := cmplx.Abs(zb - za)
	s = utl.LinSpace(0, L, n)
	zs := make([]complex128, n)
	for i, t := range utl.LinSpace(0, 1, n) {
		zs[i] = za + complex(t, 0)*(zb-za)
	}
	f, err = m.Field(zs, nworkers)
	return
}

// Extrema returns the indices of the smallest and largest heads, ignoring NaNs.
// Both indices are -1 if all heads are NaN
func Extrema(f *aem.Field) (imin, imax int) {
	imin, imax = -1, -1
	for i, h := range f.Head {
		if math.IsNaN(h) {
			continue
		}
		if imin < 0 || h < f.Head[imin] {
			imin = i
		}
		if imax < 0 || h > f.Head[imax] {
			imax = i
		}
	}
	return
}

// Table returns a table with one row per point: x y Φ Ψ h qx qy div
func Table(f *aem.Field) *bytes.Buffer {
	var buf bytes.Buffer
	io.Ff(&buf, "%13s%13s%23s%23s%23s%23s%23s%23s\n", "x", "y", "Phi", "Psi", "h", "qx", "qy", "div")
	for i, z := range f.Z {
		io.Ff(&buf, "%13g%13g%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e\n",
			real(z), imag(z), real(f.Ω[i]), imag(f.Ω[i]), f.Head[i], real(f.W[i]), -imag(f.W[i]), f.Div[i])
	}
	return &buf
}

// WriteField writes the table of results to dirout/fnkey.res
func WriteField(dirout, fnkey string, f *aem.Field, verbose bool) {
	if verbose {
		io.WriteFileVD(dirout, fnkey+".res", Table(f))
		return
	}
	io.WriteFileD(dirout, fnkey+".res", Table(f))
}

// WriteReport writes the solver report to dirout/fnkey.rep
func WriteReport(dirout, fnkey string, rep *aem.Report, verbose bool) {
	buf := bytes.NewBufferString(rep.String())
	if verbose {
		io.WriteFileVD(dirout, fnkey+".rep", buf)
		return
	}
	io.WriteFileD(dirout, fnkey+".rep", buf)
}
