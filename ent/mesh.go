// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import "math"

// Mesh is the ordered sequence of nodes (strictly increasing X) and
// the N-1 elements connecting consecutive nodes, produced by the mesh
// builder from sparse feature points.
type Mesh struct {
	Nodes    []Node
	Elements []Element
}

// Ndof returns the total DOF count: 2 per node (vertical, rotation).
func (m Mesh) Ndof() int {
	return 2 * len(m.Nodes)
}

// NodeIndex returns the index of the node within EpsMerge of x, and
// whether one was found.
func (m Mesh) NodeIndex(x float64) (int, bool) {
	for i, n := range m.Nodes {
		if math.Abs(n.X-x) < EpsMerge {
			return i, true
		}
	}
	return -1, false
}
