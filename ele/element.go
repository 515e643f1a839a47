// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements for plane trusses
package ele

import "gonum.org/v1/gonum/mat"

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                      // returns the element index
	SetEqs(edof []int) (err error) // set equations from topology (1-based global dofs)
	Edof() []int                  // returns the topology (1-based global dofs)

	// assembly
	AddToKb(Kb *mat.Dense) (err error) // adds element K to global stiffness matrix Kb
}

// CanRecoverForce defines elements that can compute internal forces from element displacements
type CanRecoverForce interface {
	CalcN(ed []float64) float64   // computes the axial force for element displacements ed
	CalcSig(ed []float64) float64 // computes the axial stress for element displacements ed
}
