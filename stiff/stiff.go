// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stiff computes the local Euler-Bernoulli beam-bending
// stiffness matrix — the one piece of per-element numerics every
// higher package in this module builds on. Grounded on the 2D branch
// of gofem's ele/solid/beam.go Recompute, specialized from the full
// 3D/6-DOF frame matrix down to the 4-DOF planar bending case this
// library targets.
package stiff

import (
	"github.com/cpmech/beamfem/errs"
	"github.com/cpmech/gosl/la"
)

// Local returns the 4x4 local stiffness matrix k(E,I,L) for DOF
// ordering [v1, theta1, v2, theta2]. L, E and I must all be strictly
// positive.
func Local(E, I, L float64) ([][]float64, error) {
	if E <= 0 {
		return nil, errs.New(errs.InvalidMaterial, "stiff.Local: E must be > 0, got %v", E)
	}
	if I <= 0 {
		return nil, errs.New(errs.InvalidMaterial, "stiff.Local: I must be > 0, got %v", I)
	}
	if L <= 0 {
		return nil, errs.New(errs.InvalidGeometry, "stiff.Local: L must be > 0, got %v", L)
	}

	L2 := L * L
	L3 := L2 * L
	EI := E * I

	k := la.MatAlloc(4, 4)

	k[0][0] = 12 * EI / L3
	k[0][1] = 6 * EI / L2
	k[0][2] = -12 * EI / L3
	k[0][3] = 6 * EI / L2

	k[1][0] = 6 * EI / L2
	k[1][1] = 4 * EI / L
	k[1][2] = -6 * EI / L2
	k[1][3] = 2 * EI / L

	k[2][0] = -12 * EI / L3
	k[2][1] = -6 * EI / L2
	k[2][2] = 12 * EI / L3
	k[2][3] = -6 * EI / L2

	k[3][0] = 6 * EI / L2
	k[3][1] = 2 * EI / L
	k[3][2] = -6 * EI / L2
	k[3][3] = 4 * EI / L

	return k, nil
}
