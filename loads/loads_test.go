// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"testing"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
	"github.com/cpmech/beamfem/mesh"
	"github.com/cpmech/gosl/chk"
)

func TestResolvePointLoads(tst *testing.T) {

	chk.PrintTitle("loads. point force and point moment land on their node's DOFs")

	m, err := mesh.Build(10, 200e9, 1e-4,
		[]ent.SupportSpec{{X: 0, Type: ent.Pin}, {X: 10, Type: ent.Roller}},
		[]ent.Load{
			ent.PointForce{Id: "P", X: 5, Magnitude: -1000},
			ent.PointMoment{Id: "Mz", X: 5, Magnitude: 500},
		})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	F, err := Resolve(m, []ent.Load{
		ent.PointForce{Id: "P", X: 5, Magnitude: -1000},
		ent.PointMoment{Id: "Mz", X: 5, Magnitude: 500},
	})
	if err != nil {
		tst.Fatalf("Resolve failed: %v", err)
	}

	j, ok := m.NodeIndex(5)
	if !ok {
		tst.Fatal("expected a node at x=5")
	}
	chk.Scalar(tst, "F[2j] (force)", 1e-9, F[2*j], -1000)
	chk.Scalar(tst, "F[2j+1] (moment)", 1e-9, F[2*j+1], 500)
}

func TestResolveDistributedFEA(tst *testing.T) {

	chk.PrintTitle("loads. uniform distributed load reduces to textbook FEA formula")

	L := 4.0
	w := -2000.0
	m, err := mesh.Build(L, 200e9, 1e-4, nil,
		[]ent.Load{func() ent.Load {
			d, e := ent.NewDistributedForce("w", 0, L, w, ent.Dead)
			if e != nil {
				tst.Fatalf("NewDistributedForce failed: %v", e)
			}
			return d
		}()})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	chk.IntAssert(len(m.Elements), 1)

	d, err := ent.NewDistributedForce("w", 0, L, w, ent.Dead)
	if err != nil {
		tst.Fatalf("NewDistributedForce failed: %v", err)
	}
	F, err := Resolve(m, []ent.Load{d})
	if err != nil {
		tst.Fatalf("Resolve failed: %v", err)
	}

	V := w * L / 2.0
	M := w * L * L / 12.0
	chk.Scalar(tst, "F[0] (V at start)", 1e-9, F[0], V)
	chk.Scalar(tst, "F[1] (M at start)", 1e-9, F[1], M)
	chk.Scalar(tst, "F[2] (V at end)", 1e-9, F[2], V)
	chk.Scalar(tst, "F[3] (-M at end)", 1e-9, F[3], -M)
}

func TestResolveLoadNotAligned(tst *testing.T) {

	chk.PrintTitle("loads. a load whose station has no mesh node is an error")

	m, err := mesh.Build(10, 200e9, 1e-4, nil, nil)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	_, err = Resolve(m, []ent.Load{ent.PointForce{Id: "P", X: 3, Magnitude: -1}})
	if !errs.Is(err, errs.LoadNotAligned) {
		tst.Fatalf("expected LoadNotAligned for a point force, got %v", err)
	}

	d, err := ent.NewDistributedForce("w", 2, 5, -10, ent.Dead)
	if err != nil {
		tst.Fatalf("NewDistributedForce failed: %v", err)
	}
	_, err = Resolve(m, []ent.Load{d})
	if !errs.Is(err, errs.LoadNotAligned) {
		tst.Fatalf("expected LoadNotAligned for an unaligned distributed load, got %v", err)
	}
}
