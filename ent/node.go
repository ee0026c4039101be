// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

// Node is an immutable point along the beam axis.
type Node struct {
	Id      string
	X       float64
	Support Support
}

// NewNode builds a Node. x must be finite and non-negative; callers
// from the mesh builder are responsible for range-checking against
// the beam length.
func NewNode(id string, x float64, support Support) Node {
	return Node{Id: id, X: x, Support: support}
}
