// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh turns a sparse set of feature points (beam ends,
// supports, load stations) into the ordered node/element list the
// rest of the pipeline assembles over. Grounded on the coordinate
// collection and tolerance-merge pattern gofem's fem/domain.go
// SetStage uses when folding mesh vertices and boundary-condition tags
// into a single active-node list, generalized here from vertex ids to
// raw float64 coordinates.
package mesh

import (
	"fmt"
	"sort"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
)

// Build produces the node and element list for a beam of the given
// length, material (E, I, uniform over the whole beam per spec.md
// §3), supports and loads. See spec.md §4.C for the algorithm.
func Build(length, E, I float64, supports []ent.SupportSpec, loads []ent.Load) (ent.Mesh, error) {
	if length <= 0 {
		return ent.Mesh{}, errs.New(errs.InvalidGeometry, "mesh.Build: length must be > 0, got %v", length)
	}
	if E <= 0 {
		return ent.Mesh{}, errs.New(errs.InvalidMaterial, "mesh.Build: E must be > 0, got %v", E)
	}
	if I <= 0 {
		return ent.Mesh{}, errs.New(errs.InvalidMaterial, "mesh.Build: I must be > 0, got %v", I)
	}

	// 1. collect feature coordinates
	coords := []float64{0, length}
	for _, s := range supports {
		if s.X < 0 || s.X > length {
			return ent.Mesh{}, errs.New(errs.OutOfDomain, "mesh.Build: support x=%v outside [0, %v]", s.X, length)
		}
		coords = append(coords, s.X)
	}
	for _, l := range loads {
		switch v := l.(type) {
		case ent.PointForce:
			if v.X < 0 || v.X > length {
				return ent.Mesh{}, errs.New(errs.OutOfDomain, "mesh.Build: point force %q x=%v outside [0, %v]", v.Id, v.X, length)
			}
			coords = append(coords, v.X)
		case ent.PointMoment:
			if v.X < 0 || v.X > length {
				return ent.Mesh{}, errs.New(errs.OutOfDomain, "mesh.Build: point moment %q x=%v outside [0, %v]", v.Id, v.X, length)
			}
			coords = append(coords, v.X)
		case ent.DistributedForce:
			if v.StartX < 0 || v.EndX > length {
				return ent.Mesh{}, errs.New(errs.OutOfDomain, "mesh.Build: distributed force %q span [%v, %v] outside [0, %v]", v.Id, v.StartX, v.EndX, length)
			}
			coords = append(coords, v.StartX, v.EndX)
		}
	}

	// 2. sort and deduplicate within EpsMerge (two coordinates within
	// epsilon merge to the earlier one)
	sort.Float64s(coords)
	merged := coords[:0:0]
	for _, c := range coords {
		if len(merged) == 0 || c-merged[len(merged)-1] >= ent.EpsMerge {
			merged = append(merged, c)
		}
	}

	// 3. emit nodes, assigning the support type of any coordinate that
	// merged into it
	nodes := make([]ent.Node, len(merged))
	for i, x := range merged {
		sup := ent.Free
		haveSup := false
		for _, s := range supports {
			if abs(s.X-x) < ent.EpsMerge {
				if haveSup && sup != s.Type {
					return ent.Mesh{}, errs.New(errs.ConflictingSupports, "mesh.Build: conflicting supports near x=%v (%v vs %v)", x, sup, s.Type)
				}
				sup, haveSup = s.Type, true
			}
		}
		nodes[i] = ent.NewNode(fmt.Sprintf("n%d", i), x, sup)
	}

	// 4. emit elements between consecutive nodes
	var elements []ent.Element
	for i := 0; i < len(nodes)-1; i++ {
		el, err := ent.NewElement(fmt.Sprintf("e%d", i), nodes[i], nodes[i+1], E, I)
		if err != nil {
			// unreachable after step 2's merge, per spec.md §4.C step 4
			return ent.Mesh{}, err
		}
		elements = append(elements, el)
	}

	return ent.Mesh{Nodes: nodes, Elements: elements}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
