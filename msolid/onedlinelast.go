// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solids
package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// OnedLinElast implements a linear elastic model for 1D elements
type OnedLinElast struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
}

// NewOnedLinElast returns a new model initialised with element properties ep = [E, A]
func NewOnedLinElast(ep []float64) (o *OnedLinElast, err error) {
	o = new(OnedLinElast)
	err = o.Init(ep)
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *OnedLinElast) Init(ep []float64) (err error) {
	if len(ep) != 2 {
		return chk.Err("oned-elast model requires ep = [E, A]. %v is invalid", ep)
	}
	o.E, o.A = ep[0], ep[1]
	if !(o.E > 0) || math.IsInf(o.E, 0) {
		return chk.Err("oned-elast model: Young's modulus must be positive and finite. E = %g is invalid", o.E)
	}
	if !(o.A > 0) || math.IsInf(o.A, 0) {
		return chk.Err("oned-elast model: cross-sectional area must be positive and finite. A = %g is invalid", o.A)
	}
	return
}

// GetPrms gets element properties ep = [E, A]
func (o OnedLinElast) GetPrms() []float64 {
	return []float64{o.E, o.A}
}

// AxialStiffness returns EA/L for a bar with length L
func (o OnedLinElast) AxialStiffness(L float64) float64 {
	return o.E * o.A / L
}

// Stress computes the axial stress for given axial strain
func (o OnedLinElast) Stress(ε float64) float64 {
	return o.E * ε
}

// CalcD computes D = dσ/dε
func (o OnedLinElast) CalcD() float64 {
	return o.E
}
