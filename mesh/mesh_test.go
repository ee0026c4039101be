// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/beamfem/errs"
	"github.com/cpmech/gosl/chk"
)

func TestBuildSimplySupported(tst *testing.T) {

	chk.PrintTitle("mesh. simply supported beam with central point load")

	m, err := Build(10, 200e9, 1e-4,
		[]ent.SupportSpec{{X: 0, Type: ent.Pin}, {X: 10, Type: ent.Roller}},
		[]ent.Load{ent.PointForce{Id: "P", X: 5, Magnitude: -10000}})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	chk.IntAssert(len(m.Nodes), 3)
	chk.IntAssert(len(m.Elements), 2)
	chk.Scalar(tst, "node1.x", 1e-12, m.Nodes[1].X, 5)
	if m.Nodes[0].Support != ent.Pin {
		tst.Fatalf("node0 should be Pin, got %v", m.Nodes[0].Support)
	}
	if m.Nodes[2].Support != ent.Roller {
		tst.Fatalf("node2 should be Roller, got %v", m.Nodes[2].Support)
	}
	if m.Nodes[1].Support != ent.Free {
		tst.Fatalf("node1 should be Free, got %v", m.Nodes[1].Support)
	}
}

func TestBuildMergesCloseCoordinates(tst *testing.T) {

	chk.PrintTitle("mesh. feature points within epsMerge collapse to one node")

	m, err := Build(10, 200e9, 1e-4,
		[]ent.SupportSpec{{X: 0, Type: ent.Pin}, {X: 5 + ent.EpsMerge/10, Type: ent.Roller}},
		[]ent.Load{ent.PointForce{Id: "P", X: 5, Magnitude: -1}})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	chk.IntAssert(len(m.Nodes), 3)
	if m.Nodes[1].Support != ent.Roller {
		tst.Fatalf("expected the nearby roller to merge onto the load's node, got %v", m.Nodes[1].Support)
	}
}

func TestBuildConflictingSupports(tst *testing.T) {

	chk.PrintTitle("mesh. two distinct supports within epsMerge is an error")

	_, err := Build(10, 200e9, 1e-4,
		[]ent.SupportSpec{{X: 5, Type: ent.Pin}, {X: 5 + ent.EpsMerge/10, Type: ent.Fixed}},
		nil)
	if !errs.Is(err, errs.ConflictingSupports) {
		tst.Fatalf("expected ConflictingSupports, got %v", err)
	}
}

func TestBuildOutOfDomain(tst *testing.T) {

	chk.PrintTitle("mesh. support outside [0, length] is an error")

	_, err := Build(10, 200e9, 1e-4, []ent.SupportSpec{{X: 11, Type: ent.Pin}}, nil)
	if !errs.Is(err, errs.OutOfDomain) {
		tst.Fatalf("expected OutOfDomain, got %v", err)
	}
}
