// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

// EpsGeom is the minimum admissible element length. Below this, two
// coordinates are considered coincident rather than a degenerate
// zero-length element.
const EpsGeom = 1e-6

// EpsMerge is the coordinate-merge tolerance used by the mesh builder
// when deduplicating feature points into nodes.
const EpsMerge = 1e-4
