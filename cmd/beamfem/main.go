// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command beamfem reads a JSON beam case, runs the analysis and
// prints a summary of displacements, reactions and diagrams.
// Grounded on gofem's root main.go: a flag-parsed driver that reads an
// input file, runs the solver and reports with gosl/io, simplified
// here since this library has no MPI, no multi-stage simulation and
// no panic-recovery wrapper — every failure is a normal returned
// error (spec.md §7).
package main

import (
	"flag"
	"os"

	"github.com/cpmech/beamfem"
	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
	"github.com/cpmech/gosl/io"
)

func main() {
	casefile := flag.String("case", "", "path to a JSON beam case file")
	resolution := flag.Int("res", 200, "diagram resolution (the diagrams have res+1 samples)")
	plotPath := flag.String("plot", "", "if set, save a diagrams plot to this path")
	flag.Parse()

	io.PfWhite("\nbeamfem -- 2D Euler-Bernoulli beam analyzer\n\n")

	if *casefile == "" {
		io.PfRed("ERROR: -case is required\n")
		os.Exit(1)
	}

	in, err := readCase(*casefile)
	if err != nil {
		fail(err)
	}

	res, err := beamfem.Analyze(in)
	if err != nil {
		fail(err)
	}

	io.Pf("> %d nodes, %d elements\n", len(res.Mesh.Nodes), len(res.Mesh.Elements))
	for _, nod := range res.Mesh.Nodes {
		d := res.Displacements[nod.Id]
		io.Pf("  node %-4s x=%-10.4g y=%-14.6g rotation=%-14.6g", nod.Id, nod.X, d.Y, d.Rotation)
		if r, ok := res.Reactions[nod.Id]; ok {
			io.Pf(" fy=%-14.6g m=%-14.6g", r.Fy, r.M)
		}
		io.Pf("\n")
	}

	diag, err := beamfem.Diagrams(ent.DiagramRequest{
		Length:        in.Length,
		Mesh:          res.Mesh,
		Loads:         in.Loads,
		Reactions:     res.Reactions,
		Displacements: res.Displacements,
		Resolution:    *resolution,
		FilterByCat:   false,
	})
	if err != nil {
		fail(err)
	}
	io.Pf("> computed %d diagram samples\n", len(diag.Shear))

	if *plotPath != "" {
		if err := plotDiagrams(diag, *plotPath); err != nil {
			fail(err)
		}
		io.Pf("> saved plot to %s\n", *plotPath)
	}
}

func fail(err error) {
	kind := "error"
	if e, ok := err.(*errs.E); ok {
		kind = e.Kind.String()
	}
	io.PfRed("ERROR [%s]: %v\n", kind, err)
	os.Exit(1)
}
