// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements assembly and solution of plane truss finite element models
package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Assem adds an element matrix to the global matrix K at the cross product of the given dofs
//  Input:
//   edof -- [nu] topology row: global dofs (1-based) of the element
//   Ke   -- [nu][nu] element matrix
//  Output:
//   K -- global matrix; only entries referenced by edof are incremented
func Assem(edof []int, K *mat.Dense, Ke [][]float64) (err error) {
	nr, nc := K.Dims()
	if nr != nc {
		return chk.Err("global matrix must be square. %d×%d is invalid", nr, nc)
	}
	err = checkDofs(edof, nr)
	if err != nil {
		return
	}
	if len(Ke) != len(edof) {
		return chk.Err("element matrix must be %d×%d. it has %d rows", len(edof), len(edof), len(Ke))
	}
	for i, row := range Ke {
		if len(row) != len(edof) {
			return chk.Err("element matrix must be %d×%d. row %d has %d columns", len(edof), len(edof), i, len(row))
		}
	}
	for i, I := range edof {
		for j, J := range edof {
			K.Set(I-1, J-1, K.At(I-1, J-1)+Ke[i][j])
		}
	}
	return
}

// Extract returns the sub-vector of a at the given dofs, preserving the order of edof
//  edof -- [nu] topology row: global dofs (1-based)
//  a    -- [ndof] global vector; e.g. displacements
func Extract(edof []int, a []float64) (ed []float64, err error) {
	err = checkDofs(edof, len(a))
	if err != nil {
		return
	}
	ed = make([]float64, len(edof))
	for i, I := range edof {
		ed[i] = a[I-1]
	}
	return
}

// Insert sets the values of ed into a at the given dofs; it is the inverse of Extract
func Insert(edof []int, a, ed []float64) (err error) {
	if len(ed) != len(edof) {
		return chk.Err("sub-vector must have %d components. %d given", len(edof), len(ed))
	}
	err = checkDofs(edof, len(a))
	if err != nil {
		return
	}
	for i, I := range edof {
		a[I-1] = ed[i]
	}
	return
}

// checkDofs checks that all dofs are within [1, ndof]
func checkDofs(dofs []int, ndof int) error {
	for _, d := range dofs {
		if d < 1 || d > ndof {
			return chk.Err("dof %d is out of range [1, %d]", d, ndof)
		}
	}
	return nil
}
