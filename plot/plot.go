// Copyright 2024 The BeamFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws shear, moment and deflection diagrams with
// gosl/plt. It is a pure consumer of an ent.DiagramResult value: it
// never participates in the analysis pipeline and never reaches back
// into solver internals (spec.md §5). Grounded on gofem's
// ele/solid/beam.go PlotDiagMoment, which plots a single element's
// moment diagram as a station polyline, generalized here to the
// whole-beam, multi-element diagrams this library produces. Each
// diagram is drawn as a plain polyline; no min/max values are
// annotated.
package plot

import (
	"github.com/cpmech/beamfem/ent"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Diagrams renders shear, moment and deflection as three stacked
// subplots and saves them to path (e.g. "diagrams.png" or
// "diagrams.svg" — the extension picks the backend, per gosl/plt).
func Diagrams(res ent.DiagramResult, path string) error {
	plt.Reset(false, nil)
	defer plt.Clf()

	plt.Subplot(3, 1, 1)
	plotSeries(res.Shear, "V(x)", "#1f77b4")

	plt.Subplot(3, 1, 2)
	plotSeries(res.Moment, "M(x)", "#d62728")

	plt.Subplot(3, 1, 3)
	plotSeries(res.Deflection, "w(x)", "#2ca02c")
	plt.Gll("x", "w", "")

	plt.Save(path)
	return nil
}

func plotSeries(samples []ent.Sample, label, color string) {
	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = s.X
		y[i] = s.V
	}
	plt.Plot(x, y, io.Sf("'-', color='%s', label='%s', clip_on=0", color, label))
	plt.Gll("x", label, "")
}
