// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/goaem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01")

	uf := NewUniformFlow(1, 2, math.Pi/6)
	chk.Float64(tst, "α", 1e-17, uf.Alpha(), math.Pi/6)

	checkComplex(tst, "Ω(√3+i)", 1e-14, uf.Potential(complex(math.Sqrt(3), 1)), complex(-4, 0))
	checkComplex(tst, "Ω(1-i)", 1e-13, uf.Potential(complex(1, -1)), complex(-0.732050807568878, 2.73205080756888))

	Wcorrect := complex(2*math.Cos(math.Pi/6), -2*math.Sin(math.Pi/6))
	for _, z := range []complex128{0, complex(math.Sqrt(3), 1), complex(1, -1), complex(-1e4, 3e3), complex(10, 20)} {
		checkComplex(tst, "W", 1e-15, uf.Discharge(z), Wcorrect)
		if uf.Divergence(z) != 0 {
			tst.Errorf("divergence must be zero")
		}
	}
	checkComplex(tst, "W = √3 - i", 1e-15, uf.Discharge(0), complex(math.Sqrt(3), -1))
	chk.Float64(tst, "abstraction", 1e-17, uf.Abstraction(), 0)
	chk.Int(tst, "len(JacPotential)", len(uf.JacPotential(complex(10, 20))), 0)
	chk.Int(tst, "len(JacDischarge)", len(uf.JacDischarge(complex(10, 20))), 0)
	chk.Int(tst, "Nprms", Nprms(uf), 0)
}

func Test_uniform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform02. factory")

	e, err := New(&inp.ElemData{Id: 4, Type: "uniform", Inact: true, Prms: dbf.Params{
		&dbf.P{N: "Q0", V: 1},
		&dbf.P{N: "alp", V: math.Pi / 2},
	}})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if e.IsActive() {
		tst.Errorf("element should start inactive")
	}
	e.Activate()
	if !e.IsActive() {
		tst.Errorf("element should be active")
	}
	chk.Int(tst, "id", e.Id(), 4)

	// flow towards +y  ⇒  W = Qx - i Qy = -i
	checkComplex(tst, "W", 1e-15, e.Discharge(0), complex(0, -1))
}
