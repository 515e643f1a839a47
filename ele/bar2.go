// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gotruss/msolid"
	"github.com/cpmech/gosl/chk"
)

// Bar2e computes the element stiffness matrix of a plane bar
//  Input:
//   ex -- [2] x-coordinates of nodes
//   ey -- [2] y-coordinates of nodes
//   ep -- [2] element properties [E, A]
//  Output:
//   Ke -- [4][4] stiffness matrix in global coordinates
func Bar2e(ex, ey, ep []float64) (Ke [][]float64, err error) {
	o, err := newBar(ex, ey, ep)
	if err != nil {
		return
	}
	return o.K, nil
}

// Bar2s computes the axial force of a plane bar
//  Input:
//   ex -- [2] x-coordinates of nodes
//   ey -- [2] y-coordinates of nodes
//   ep -- [2] element properties [E, A]
//   ed -- [4] element displacements [u1x, u1y, u2x, u2y]
//  Output:
//   N -- axial force; positive means tension
func Bar2s(ex, ey, ep, ed []float64) (N float64, err error) {
	if len(ed) != 4 {
		return 0, chk.Err("bar element displacements must have 4 components. %d given", len(ed))
	}
	o, err := newBar(ex, ey, ep)
	if err != nil {
		return
	}
	return o.CalcN(ed), nil
}

// newBar allocates a standalone bar element with no equations
func newBar(ex, ey, ep []float64) (o *ElastBar, err error) {
	mdl, err := msolid.NewOnedLinElast(ep)
	if err != nil {
		return
	}
	return NewElastBar(0, ex, ey, mdl)
}
