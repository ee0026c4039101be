// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the fatal error taxonomy shared by every stage
// of the analysis pipeline. An analysis either returns a fully formed
// result or one of these kinds — there is no partial result and no
// retry.
package errs

import "github.com/cpmech/gosl/chk"

// Kind classifies why an analysis call aborted.
type Kind int

// error kinds, one per row of the taxonomy table
const (
	// InvalidGeometry: length <= 0, or an element's length <= ε_geom.
	InvalidGeometry Kind = iota
	// InvalidMaterial: E <= 0 or I <= 0.
	InvalidMaterial
	// OutOfDomain: a support or point-load x falls outside [0, length].
	OutOfDomain
	// ConflictingSupports: two distinct supports merge within ε_merge.
	ConflictingSupports
	// UnstableStructure: the reduced stiffness matrix is singular, or
	// the solution contains a non-finite entry.
	UnstableStructure
	// LoadNotAligned: a distributed load's endpoints did not land on
	// mesh nodes. This should be unreachable after a correct mesh
	// build; its presence here is a guard against that becoming a bug.
	LoadNotAligned
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case InvalidMaterial:
		return "InvalidMaterial"
	case OutOfDomain:
		return "OutOfDomain"
	case ConflictingSupports:
		return "ConflictingSupports"
	case UnstableStructure:
		return "UnstableStructure"
	case LoadNotAligned:
		return "LoadNotAligned"
	default:
		return "Unknown"
	}
}

// E is a fatal, self-describing analysis error.
type E struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *E) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// New builds an *E, formatting Msg the same way gosl/chk.Err does
// throughout the rest of this module.
func New(kind Kind, format string, prm ...interface{}) error {
	return &E{Kind: kind, Msg: chk.Err(format, prm...).Error()}
}

// Is reports whether err is an *E of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*E)
	return ok && e.Kind == kind
}
