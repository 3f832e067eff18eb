// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/goaem/aem"
	"github.com/cpmech/goaem/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	ngrid := io.ArgToInt(2, 0)
	nworkers := io.ArgToInt(3, 0)
	dirout := io.ArgToString(4, "/tmp/goaem")

	// message
	if verbose {
		io.PfWhite("\nGoaem -- Go Analytic Element Method\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of grid points along x and y (0=none)", "ngrid", ngrid,
			"number of workers for grid (0=#CPUs)", "nworkers", nworkers,
			"directory for output files", "dirout", dirout,
		))
	}

	// analysis data
	analysis, err := aem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot allocate simulation:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if analysis.Report != nil {
		if verbose {
			io.Pf("\n%v", analysis.Report)
		}
		out.WriteReport(dirout, fnkey, analysis.Report, verbose)
	}
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// heads on grid
	if ngrid > 1 {
		xmin, xmax, ymin, ymax := limits(analysis)
		zs := aem.Grid(xmin, xmax, ymin, ymax, ngrid, ngrid)
		f, err := analysis.Model.Field(zs, nworkers)
		if err != nil && verbose {
			io.PfYel("warning: %v\n", err)
		}
		out.WriteField(dirout, fnkey, f, verbose)
		if imin, imax := out.Extrema(f); imin >= 0 && verbose {
			io.Pf("> h_min = %g at %v\n", f.Head[imin], f.Z[imin])
			io.Pf("> h_max = %g at %v\n", f.Head[imax], f.Z[imax])
		}
	}
}

// limits returns the bounding box of the reference locations of all elements, enlarged by 10%
func limits(analysis *aem.Main) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, e := range analysis.Sim.Elements {
		xmin, xmax = math.Min(xmin, e.X), math.Max(xmax, e.X)
		ymin, ymax = math.Min(ymin, e.Y), math.Max(ymax, e.Y)
	}
	if len(analysis.Sim.Elements) == 0 {
		return -1, 1, -1, 1
	}
	dx := math.Max(0.1*(xmax-xmin), 1)
	dy := math.Max(0.1*(ymax-ymin), 1)
	return xmin - dx, xmax + dx, ymin - dy, ymax + dy
}
