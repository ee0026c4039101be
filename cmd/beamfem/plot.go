// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/beamfem/ent"
	beamplot "github.com/cpmech/beamfem/plot"
)

func plotDiagrams(diag ent.DiagramResult, path string) error {
	return beamplot.Diagrams(diag, path)
}
