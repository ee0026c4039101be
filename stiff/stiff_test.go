// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stiff

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLocalSymmetricAndValues(tst *testing.T) {

	chk.PrintTitle("local stiffness matrix. symmetry and known entries")

	E, I, L := 200e9, 1e-4, 2.0
	k, err := Local(E, I, L)
	if err != nil {
		tst.Fatalf("Local failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Scalar(tst, "k symmetric", 1e-9, k[i][j], k[j][i])
		}
	}

	EI := E * I
	chk.Scalar(tst, "k[0][0]", 1e-6, k[0][0], 12*EI/(L*L*L))
	chk.Scalar(tst, "k[1][1]", 1e-6, k[1][1], 4*EI/L)
	chk.Scalar(tst, "k[0][1]", 1e-6, k[0][1], 6*EI/(L*L))
	chk.Scalar(tst, "k[0][2]", 1e-6, k[0][2], -12*EI/(L*L*L))
}

func TestLocalRejectsBadInputs(tst *testing.T) {

	chk.PrintTitle("local stiffness matrix. invalid inputs")

	if _, err := Local(0, 1, 1); err == nil {
		tst.Fatal("expected error for E <= 0")
	}
	if _, err := Local(1, 0, 1); err == nil {
		tst.Fatal("expected error for I <= 0")
	}
	if _, err := Local(1, 1, 0); err == nil {
		tst.Fatal("expected error for L <= 0")
	}
}
