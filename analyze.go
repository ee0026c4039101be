// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package beamfem is the single entry point a front-end drives: it
// wires the mesh builder, load resolver and FEM solver behind Analyze,
// and the diagram calculator behind Diagrams. Grounded on gofem's
// fem/fem.go NewFEM, which plays the same "one function per front-end"
// role for the full multi-physics framework this library specializes
// down to 2D Euler-Bernoulli beams.
package beamfem

import (
	"github.com/cpmech/beamfem/diagram"
	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/mesh"
	"github.com/cpmech/beamfem/solve"
)

// Analyze runs the full pipeline of spec.md §2: mesh -> load resolver
// -> FEM solver, returning nodal displacements and support reactions.
func Analyze(in ent.BeamInput) (ent.AnalysisResult, error) {
	m, err := mesh.Build(in.Length, in.E, in.I, in.Supports, in.Loads)
	if err != nil {
		return ent.AnalysisResult{}, err
	}
	return solve.Solve(m, in.Loads)
}

// Diagrams computes shear, moment and deflection diagrams from an
// already-solved AnalysisResult's mesh, reactions and displacements.
func Diagrams(req ent.DiagramRequest) (ent.DiagramResult, error) {
	return diagram.Compute(req)
}
