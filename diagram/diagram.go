// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram reconstructs shear, moment and deflection curves
// from a solved AnalysisResult by the method of sections and cubic
// Hermite interpolation. Grounded on gofem's ele/solid/beam.go
// CalcMoment2d/CalcShearForce2d station-sampling loop
// (dξ := 1.0/float64(nstations-1)), generalized from "per-element
// closed-form" to "summation of every point/distributed contribution
// to the left of an arbitrary section", since this library's beam can
// span many elements rather than evaluating one element in isolation.
package diagram

import (
	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
)

// epsEdge is the tolerance used by the right-edge exclusion rule and
// by point-contribution inclusion (spec.md §4.F step 4).
const epsEdge = 1e-9

// epsSnap is the numerical cleanup threshold (spec.md §4.F step 5).
const epsSnap = 1e-4

// Compute builds the shear, moment and deflection diagrams for req.
func Compute(req ent.DiagramRequest) (ent.DiagramResult, error) {
	if req.Resolution < 1 {
		return ent.DiagramResult{}, errs.New(errs.InvalidGeometry, "diagram.Compute: resolution must be >= 1, got %d", req.Resolution)
	}
	if req.Length <= 0 {
		return ent.DiagramResult{}, errs.New(errs.InvalidGeometry, "diagram.Compute: length must be > 0, got %v", req.Length)
	}

	var cats []ent.Category
	if req.FilterByCat {
		cats = []ent.Category{req.Category}
	}

	points, moments, dists := splitLoads(req.Loads, cats)

	R := req.Resolution
	result := ent.DiagramResult{
		Shear:      make([]ent.Sample, R+1),
		Moment:     make([]ent.Sample, R+1),
		Deflection: make([]ent.Sample, R+1),
	}

	dx := req.Length / float64(R)
	for i := 0; i <= R; i++ {
		x := float64(i) * dx

		V, M := sectionForces(x, req.Length, points, moments, dists, req.Reactions, req.Mesh)
		w, err := deflectionAt(x, req.Mesh, req.Displacements)
		if err != nil {
			return ent.DiagramResult{}, err
		}

		result.Shear[i] = ent.Sample{X: x, V: snap(V)}
		result.Moment[i] = ent.Sample{X: x, V: snap(M)}
		result.Deflection[i] = ent.Sample{X: x, V: w}
	}

	return result, nil
}

type pointLoad struct {
	x, magnitude float64
}

// splitLoads separates the (category-filtered) load list into point
// forces, point moments and distributed forces.
func splitLoads(ls []ent.Load, cats []ent.Category) (points, moments []pointLoad, dists []ent.DistributedForce) {
	for _, l := range ls {
		if !ent.HasCategory(l, cats...) {
			continue
		}
		switch v := l.(type) {
		case ent.PointForce:
			points = append(points, pointLoad{v.X, v.Magnitude})
		case ent.PointMoment:
			moments = append(moments, pointLoad{v.X, v.Magnitude})
		case ent.DistributedForce:
			dists = append(dists, v)
		}
	}
	return
}

// included reports whether a point contribution at xf participates in
// the section sum at x: it must lie at or to the left of the section
// and must not sit at the beam's right edge (spec.md §4.F step 4).
func included(xf, x, length float64) bool {
	atRightEdge := xf >= length-epsEdge
	return xf <= x+epsEdge && !atRightEdge
}

// sectionForces sums V(x) and M(x) per the method of sections:
// positive V is the sum of upward forces to the left of the section;
// positive M is the sum of counter-clockwise moments about the
// section from forces to the left.
func sectionForces(x, length float64, points, moments []pointLoad, dists []ent.DistributedForce, reactions map[string]ent.Reaction, m ent.Mesh) (V, M float64) {
	for _, p := range points {
		if included(p.x, x, length) {
			V += p.magnitude
			M += p.magnitude * (x - p.x)
		}
	}
	for _, p := range moments {
		if included(p.x, x, length) {
			M += p.magnitude
		}
	}
	for _, nod := range m.Nodes {
		r, ok := reactions[nod.Id]
		if !ok {
			continue
		}
		if included(nod.X, x, length) {
			V += r.Fy
			M += r.Fy * (x - nod.X)
			M += -r.M // negate: external-reaction convention -> internal-diagram convention
		}
	}
	for _, d := range dists {
		if x > d.StartX {
			b := d.EndX
			if x < b {
				b = x
			}
			width := b - d.StartX
			centroid := d.StartX + width/2
			V += d.MagnitudePerLength * width
			M += d.MagnitudePerLength * width * (x - centroid)
		}
	}
	return
}

// deflectionAt reconstructs w(x) via cubic Hermite interpolation over
// the element containing x (spec.md §4.F "Deflection w(x)").
func deflectionAt(x float64, m ent.Mesh, disp map[string]ent.Displacement) (float64, error) {
	const epsContain = 1e-3
	for _, el := range m.Elements {
		if x >= el.Start.X-epsContain && x <= el.End.X+epsContain {
			L := el.L
			xi := (x - el.Start.X) / L

			vj := disp[el.Start.Id]
			vk := disp[el.End.Id]

			N1 := 1 - 3*xi*xi + 2*xi*xi*xi
			N2 := L * (xi - 2*xi*xi + xi*xi*xi)
			N3 := 3*xi*xi - 2*xi*xi*xi
			N4 := L * (xi*xi*xi - xi*xi)

			return N1*vj.Y + N2*vj.Rotation + N3*vk.Y + N4*vk.Rotation, nil
		}
	}
	return 0, errs.New(errs.InvalidGeometry, "diagram.Compute: x=%v does not fall within any element", x)
}

func snap(v float64) float64 {
	if v > -epsSnap && v < epsSnap {
		return 0
	}
	return v
}
