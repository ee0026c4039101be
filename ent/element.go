// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"math"

	"github.com/cpmech/beamfem/errs"
)

// Element is an immutable Euler-Bernoulli beam segment between two
// nodes, carrying its own material (E) and section (I) properties —
// one material model per element, mirroring the teacher's per-cell
// material lookup but inlined since a beam element here owns exactly
// one span rather than referencing a shared model by tag.
type Element struct {
	Id        string
	Start, End Node
	E, I      float64
	L         float64
}

// NewElement validates and builds an Element. L = |end.x - start.x|
// must exceed ent.EpsGeom; E and I must be strictly positive.
func NewElement(id string, start, end Node, E, I float64) (Element, error) {
	if E <= 0 {
		return Element{}, errs.New(errs.InvalidMaterial, "element %q: E must be > 0, got %v", id, E)
	}
	if I <= 0 {
		return Element{}, errs.New(errs.InvalidMaterial, "element %q: I must be > 0, got %v", id, I)
	}
	L := math.Abs(end.X - start.X)
	if L <= EpsGeom {
		return Element{}, errs.New(errs.InvalidGeometry, "element %q: length %v <= epsGeom %v", id, L, EpsGeom)
	}
	return Element{Id: id, Start: start, End: end, E: E, I: I, L: L}, nil
}
