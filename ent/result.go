// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

// Displacement is a node's vertical translation and rotation.
type Displacement struct {
	Y        float64
	Rotation float64
}

// Reaction is a restrained node's support force and moment.
type Reaction struct {
	Fy float64
	M  float64
}

// AnalysisResult is the value-out contract for Analyze.
type AnalysisResult struct {
	Mesh          Mesh
	Displacements map[string]Displacement // node id -> displacement, all nodes
	Reactions     map[string]Reaction      // node id -> reaction, restrained nodes only
}

// DiagramRequest is the value-in contract for Diagrams.
type DiagramRequest struct {
	Length        float64
	Mesh          Mesh
	Loads         []Load
	Reactions     map[string]Reaction
	Displacements map[string]Displacement
	Resolution    int
	Category      Category
	FilterByCat   bool // false => analyze-style: no filtering
}

// Sample is one (x, value) point of a diagram sequence.
type Sample struct {
	X, V float64
}

// DiagramResult is the value-out contract for Diagrams: three
// equal-length, equally-spaced sequences along the beam axis.
type DiagramResult struct {
	Shear      []Sample
	Moment     []Sample
	Deflection []Sample
}
