// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/gosl/chk"
)

// caseFile is the on-disk JSON shape of a beam case, mirroring the
// plain-JSON-struct convention gofem's inp/sim.go uses for its .sim
// input files, specialized to this library's narrower BeamInput.
type caseFile struct {
	Length   float64       `json:"length"`
	E        float64       `json:"E"`
	I        float64       `json:"I"`
	Supports []supportSpec `json:"supports"`
	Loads    []loadSpec    `json:"loads"`
}

type supportSpec struct {
	X    float64 `json:"x"`
	Type string  `json:"type"` // "free", "roller", "pin", "fixed"
}

// loadSpec is a single tagged-union JSON record for one of the three
// load kinds; Kind selects which of the remaining fields apply.
type loadSpec struct {
	Kind      string  `json:"kind"` // "point_force", "point_moment", "distributed"
	Id        string  `json:"id"`
	X         float64 `json:"x,omitempty"`
	StartX    float64 `json:"start_x,omitempty"`
	EndX      float64 `json:"end_x,omitempty"`
	Magnitude float64 `json:"magnitude,omitempty"`
	Category  string  `json:"category"` // "dead", "live", "wind", "snow", "seismic"
}

// readCase reads and decodes a case file into a BeamInput.
func readCase(path string) (ent.BeamInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ent.BeamInput{}, chk.Err("cannot read case file %q:\n%v", path, err)
	}
	var cf caseFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return ent.BeamInput{}, chk.Err("cannot parse case file %q:\n%v", path, err)
	}

	in := ent.BeamInput{Length: cf.Length, E: cf.E, I: cf.I}
	for _, s := range cf.Supports {
		in.Supports = append(in.Supports, ent.SupportSpec{X: s.X, Type: supportFromString(s.Type)})
	}
	for _, l := range cf.Loads {
		cat := categoryFromString(l.Category)
		switch l.Kind {
		case "point_force":
			in.Loads = append(in.Loads, ent.PointForce{Id: l.Id, X: l.X, Magnitude: l.Magnitude, Category: cat})
		case "point_moment":
			in.Loads = append(in.Loads, ent.PointMoment{Id: l.Id, X: l.X, Magnitude: l.Magnitude, Category: cat})
		case "distributed":
			df, err := ent.NewDistributedForce(l.Id, l.StartX, l.EndX, l.Magnitude, cat)
			if err != nil {
				return ent.BeamInput{}, err
			}
			in.Loads = append(in.Loads, df)
		default:
			return ent.BeamInput{}, chk.Err("case file %q: unknown load kind %q", path, l.Kind)
		}
	}
	return in, nil
}

func supportFromString(s string) ent.Support {
	switch s {
	case "roller":
		return ent.Roller
	case "pin":
		return ent.Pin
	case "fixed":
		return ent.Fixed
	default:
		return ent.Free
	}
}

func categoryFromString(s string) ent.Category {
	switch s {
	case "live":
		return ent.Live
	case "wind":
		return ent.Wind
	case "snow":
		return ent.Snow
	case "seismic":
		return ent.Seismic
	default:
		return ent.Dead
	}
}
