// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ent holds the typed domain values (nodes, elements, loads,
// meshes and results) shared by every stage of the beam analysis
// pipeline. Nothing in here performs numerical work; it only carries
// data and enforces the invariants spec'd for construction.
package ent

// Support is the idealized restraint applied at a node.
type Support int

// kinds of support
const (
	Free Support = iota
	Roller
	Pin
	Fixed
)

// String implements fmt.Stringer.
func (s Support) String() string {
	switch s {
	case Free:
		return "free"
	case Roller:
		return "roller"
	case Pin:
		return "pin"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// RestrainedY returns true if the support restrains vertical translation.
func (s Support) RestrainedY() bool {
	return s != Free
}

// RestrainedRotation returns true if the support restrains rotation.
func (s Support) RestrainedRotation() bool {
	return s == Fixed
}
