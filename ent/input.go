// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

// SupportSpec places a support at a coordinate; it is the raw,
// pre-mesh form of a support (spec.md §6's "supports: [{x, type}]").
type SupportSpec struct {
	X    float64
	Type Support
}

// BeamInput is the value-in contract for Analyze.
type BeamInput struct {
	Length   float64
	E, I     float64
	Supports []SupportSpec
	Loads    []Load
}
