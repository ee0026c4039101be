// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve assembles the global stiffness matrix, partitions it
// by restraint, solves the reduced system and recovers reactions from
// the equilibrium residual. Assembly is grounded on the teacher's own
// fem/domain.go triplet-based pattern (la.Triplet, Kb.Put); the
// teacher's actual linear solve is a pluggable external sparse solver
// wired through la.LinSol/la.GetSolver(sim.LinSol.Name), sized for
// large 3D multi-physics systems. This beam solver is always small and
// dense (spec.md §9 explicitly allows dense storage "up to a few
// hundred DOFs"), so it instead inverts K_ff directly with la.MatInv —
// the determinant-returning dense-inverse idiom used for Jacobian
// inversion in the sibling forks' shp/shp.go (PaddySchmidt-gofem,
// mallano-gofem; not present in the chosen teacher) — which reports
// the determinant it used to decide whether the inverse exists,
// doubling as the singularity guard spec.md §4.E step 6 asks for.
package solve

import (
	"math"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
	"github.com/cpmech/beamfem/loads"
	"github.com/cpmech/beamfem/stiff"
	"github.com/cpmech/gosl/la"
)

// minDet is the determinant magnitude below which the reduced
// stiffness matrix is treated as singular (spec.md §4.E step 6).
const minDet = 1e-10

// Assemble builds the dense global stiffness matrix for m.
func Assemble(m ent.Mesh) ([][]float64, error) {
	ndof := m.Ndof()
	nnz := 16 * len(m.Elements)
	Kb := new(la.Triplet)
	Kb.Init(ndof, ndof, nnz)

	for ei, el := range m.Elements {
		k, err := stiff.Local(el.E, el.I, el.L)
		if err != nil {
			return nil, err
		}
		i, okI := m.NodeIndex(el.Start.X)
		j, okJ := m.NodeIndex(el.End.X)
		if !okI || !okJ {
			return nil, errs.New(errs.LoadNotAligned, "assemble: element %d endpoints not found in mesh", ei)
		}
		dof := [4]int{2 * i, 2*i + 1, 2 * j, 2*j + 1}
		for a := 0; a < 4; a++ {
			for b := 0; b < 4; b++ {
				Kb.Put(dof[a], dof[b], k[a][b])
			}
		}
	}

	return Kb.ToMatrix(nil).ToDense(), nil
}

// Solve runs the full pipeline described in spec.md §4.E: assembly,
// forcing, partition, linear solve with singularity detection, and
// reaction recovery.
func Solve(m ent.Mesh, loadList []ent.Load) (ent.AnalysisResult, error) {
	K, err := Assemble(m)
	if err != nil {
		return ent.AnalysisResult{}, err
	}
	F, err := loads.Resolve(m, loadList)
	if err != nil {
		return ent.AnalysisResult{}, err
	}

	ndof := m.Ndof()
	free, fixed := partition(m)

	u := make([]float64, ndof)

	if len(free) > 0 {
		n := len(free)
		Kff := la.MatAlloc(n, n)
		Ff := make([]float64, n)
		for a, A := range free {
			Ff[a] = F[A]
			for b, B := range free {
				Kff[a][b] = K[A][B]
			}
		}

		Kffi := la.MatAlloc(n, n)
		det, err := la.MatInv(Kffi, Kff, minDet)
		if err != nil || math.Abs(det) < minDet {
			return ent.AnalysisResult{}, errs.New(errs.UnstableStructure, "solve: reduced stiffness matrix is singular (det=%v): structure is a mechanism", det)
		}

		uf := make([]float64, n)
		la.MatVecMul(uf, 1, Kffi, Ff)
		for a, A := range free {
			if math.IsNaN(uf[a]) || math.IsInf(uf[a], 0) {
				return ent.AnalysisResult{}, errs.New(errs.UnstableStructure, "solve: non-finite displacement at dof %d", A)
			}
			u[A] = uf[a]
		}
	}
	_ = fixed // fixed DOFs stay at their zero-initialized value

	// reactions: R = K*u - F
	R := make([]float64, ndof)
	la.MatVecMul(R, 1, K, u)
	for i := range R {
		R[i] -= F[i]
	}

	displacements := make(map[string]ent.Displacement, len(m.Nodes))
	reactions := make(map[string]ent.Reaction)
	for i, nod := range m.Nodes {
		displacements[nod.Id] = ent.Displacement{Y: u[2*i], Rotation: u[2*i+1]}
		if nod.Support.RestrainedY() || nod.Support.RestrainedRotation() {
			var r ent.Reaction
			if nod.Support.RestrainedY() {
				r.Fy = R[2*i]
			}
			if nod.Support.RestrainedRotation() {
				r.M = R[2*i+1]
			}
			reactions[nod.Id] = r
		}
	}

	return ent.AnalysisResult{Mesh: m, Displacements: displacements, Reactions: reactions}, nil
}

// partition splits DOFs into the free list and the restrained list,
// in node order, per spec.md §4.E step 4.
func partition(m ent.Mesh) (free, fixed []int) {
	for i, nod := range m.Nodes {
		if nod.Support.RestrainedY() {
			fixed = append(fixed, 2*i)
		} else {
			free = append(free, 2*i)
		}
		if nod.Support.RestrainedRotation() {
			fixed = append(fixed, 2*i+1)
		} else {
			free = append(free, 2*i+1)
		}
	}
	return
}
