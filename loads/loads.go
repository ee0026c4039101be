// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loads turns user-level loads into the consistent nodal
// force vector the solver assembles against, via Fixed-End-Action
// equivalencing for distributed loads. Grounded on the o.fxl
// computation in gofem's ele/solid/beam.go AddToRhs, specialized to
// the uniform-intensity case (qnL == qnR == w), which collapses that
// general trapezoidal formula to the textbook V=wL/2, M=wL^2/12.
package loads

import (
	"math"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
)

// Resolve builds the length-2N nodal force vector F for m, where DOF
// 2i is vertical at node i and DOF 2i+1 is rotation at node i.
func Resolve(m ent.Mesh, ls []ent.Load) ([]float64, error) {
	F := make([]float64, m.Ndof())

	for _, l := range ls {
		switch v := l.(type) {

		case ent.PointForce:
			j, ok := m.NodeIndex(v.X)
			if !ok {
				return nil, errs.New(errs.LoadNotAligned, "point force %q at x=%v: no node found", v.Id, v.X)
			}
			F[2*j] += v.Magnitude

		case ent.PointMoment:
			j, ok := m.NodeIndex(v.X)
			if !ok {
				return nil, errs.New(errs.LoadNotAligned, "point moment %q at x=%v: no node found", v.Id, v.X)
			}
			F[2*j+1] += v.Magnitude

		case ent.DistributedForce:
			if err := applyDistributed(F, m, v); err != nil {
				return nil, err
			}
		}
	}

	return F, nil
}

// applyDistributed adds the Fixed-End-Action contributions of a
// uniform distributed load to every element it exactly tiles.
func applyDistributed(F []float64, m ent.Mesh, d ent.DistributedForce) error {
	w := d.MagnitudePerLength
	covered := 0.0

	for ei, el := range m.Elements {
		if el.Start.X >= d.StartX-ent.EpsMerge && el.End.X <= d.EndX+ent.EpsMerge {
			L := el.L
			i, ok := m.NodeIndex(el.Start.X)
			if !ok {
				return errs.New(errs.LoadNotAligned, "distributed force %q: start node of element %d not found", d.Id, ei)
			}
			j, ok := m.NodeIndex(el.End.X)
			if !ok {
				return errs.New(errs.LoadNotAligned, "distributed force %q: end node of element %d not found", d.Id, ei)
			}

			V := w * L / 2.0
			M := w * L * L / 12.0

			F[2*i] += V
			F[2*i+1] += M
			F[2*j] += V
			F[2*j+1] -= M

			covered += L
		}
	}

	span := d.EndX - d.StartX
	if math.Abs(covered-span) > ent.EpsMerge {
		return errs.New(errs.LoadNotAligned, "distributed force %q: span %v not exactly tiled by mesh elements (covered %v)", d.Id, span, covered)
	}
	return nil
}
