// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import "github.com/cpmech/beamfem/errs"

// Load is a tagged sum of the three load shapes the core understands:
// PointForce, PointMoment and DistributedForce. Re-expressed here as
// a Go interface with an unexported marker method rather than a class
// hierarchy with a discriminating field — see SPEC_FULL.md §9 — so
// callers switch on concrete type instead of inspecting a tag.
type Load interface {
	// Cat returns the load case this load belongs to.
	Cat() Category
	isLoad()
}

// PointForce is a concentrated force along +y at a single station.
type PointForce struct {
	Id        string
	X         float64
	Magnitude float64
	Category  Category
}

func (f PointForce) Cat() Category { return f.Category }
func (PointForce) isLoad()         {}

// PointMoment is a concentrated moment about +z at a single station.
type PointMoment struct {
	Id        string
	X         float64
	Magnitude float64
	Category  Category
}

func (m PointMoment) Cat() Category { return m.Category }
func (PointMoment) isLoad()         {}

// DistributedForce is a uniform-intensity load over [StartX, EndX].
type DistributedForce struct {
	Id                string
	StartX, EndX      float64
	MagnitudePerLength float64
	Category          Category
}

func (d DistributedForce) Cat() Category { return d.Category }
func (DistributedForce) isLoad()         {}

// NewDistributedForce validates StartX < EndX before returning the value.
func NewDistributedForce(id string, startX, endX, w float64, cat Category) (DistributedForce, error) {
	if !(startX < endX) {
		return DistributedForce{}, errs.New(errs.InvalidGeometry, "distributed load %q: start_x %v must be < end_x %v", id, startX, endX)
	}
	return DistributedForce{Id: id, StartX: startX, EndX: endX, MagnitudePerLength: w, Category: cat}, nil
}

// HasCategory reports whether load's category is in cats. An empty
// cats matches everything (the diagram calculator passes none when no
// category filter is requested).
func HasCategory(l Load, cats ...Category) bool {
	if len(cats) == 0 {
		return true
	}
	for _, c := range cats {
		if l.Cat() == c {
			return true
		}
	}
	return false
}
