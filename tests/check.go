// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test elements and FE simulations
package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gotruss/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CompareResults performs comparison of results (gotruss versus .cmp files)
//  Note: fnpath == "" means the built-in exs3 model
func CompareResults(tst *testing.T, fnpath, cmpfname string, tolK, tolu, tolN float64, skipK, verbose bool) {

	// run
	_, res := RunModel(tst, fnpath, false)

	// read file with comparison results
	cmp, err := out.ReadJSON(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadJSON failed:\n%v", err)
		return
	}
	if len(cmp.A) != len(res.A) || len(cmp.Elems) != len(res.Elems) {
		tst.Errorf("CompareResults: sizes of results differ: ndof = %d vs %d, nel = %d vs %d\n", len(res.A), len(cmp.A), len(res.Elems), len(cmp.Elems))
		return
	}

	// check K matrix
	if !skipK {
		if verbose {
			io.Pfgreen(". . . checking K matrix . . .\n")
		}
		chk.Deep2(tst, "K", tolK, res.K, cmp.K)
	}

	// check displacements and reactions
	if verbose {
		io.Pfgreen(". . . checking displacements and reactions . . .\n")
	}
	for i := range cmp.A {
		chk.AnaNum(tst, io.Sf("a%d", i+1), tolu, res.A[i], cmp.A[i], verbose)
	}
	for i := range cmp.R {
		chk.AnaNum(tst, io.Sf("r%d", i+1), tolN, res.R[i], cmp.R[i], verbose)
	}

	// check element forces
	if verbose {
		io.Pfgreen(". . . checking axial forces . . .\n")
	}
	for i, e := range cmp.Elems {
		chk.AnaNum(tst, io.Sf("N%d", i+1), tolN, res.Elems[i].N, e.N, verbose)
		if e.Sig != 0 {
			chk.AnaNum(tst, io.Sf("σ%d/σref", i+1), 1e-12, res.Elems[i].Sig/e.Sig, 1, verbose)
		}
	}
}

// CheckSymmetric checks that K is square and symmetric
func CheckSymmetric(tst *testing.T, K [][]float64, tol float64) {
	n := len(K)
	for i := 0; i < n; i++ {
		if len(K[i]) != n {
			tst.Errorf("K is not square: row %d has %d columns instead of %d\n", i, len(K[i]), n)
			return
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(K[i][j]-K[j][i]) > tol {
				tst.Errorf("K is not symmetric: K[%d][%d] = %v != K[%d][%d] = %v\n", i, j, K[i][j], j, i, K[j][i])
			}
		}
	}
}

// CheckRigidBody checks that K annihilates the rigid body translations along x and y;
// even dofs (0-based) are ux and odd dofs are uy
func CheckRigidBody(tst *testing.T, K [][]float64, tol float64) {
	for dir := 0; dir < 2; dir++ {
		for i, Ki := range K {
			sum := 0.0
			for j := dir; j < len(Ki); j += 2 {
				sum += Ki[j]
			}
			if math.Abs(sum) > tol {
				tst.Errorf("K·t%s[%d] = %v is not zero\n", []string{"x", "y"}[dir], i, sum)
			}
		}
	}
}

// CheckEquilibrium checks K·a - f - r = 0 at every dof and the global balance of forces
func CheckEquilibrium(tst *testing.T, res *fem.Results, tol float64) {
	n := len(res.A)
	var sum [2]float64
	for i := 0; i < n; i++ {
		r := -res.F[i] - res.R[i]
		for j := 0; j < n; j++ {
			r += res.K[i][j] * res.A[j]
		}
		if math.Abs(r) > tol {
			tst.Errorf("equilibrium @ dof %d failed: residual = %v\n", i+1, r)
		}
		sum[i%2] += res.F[i] + res.R[i]
	}
	if math.Abs(sum[0]) > tol || math.Abs(sum[1]) > tol {
		tst.Errorf("global equilibrium failed: ΣFx = %v, ΣFy = %v\n", sum[0], sum[1])
	}
}

// CheckFreeReactions checks that reactions vanish at all dofs but the prescribed ones
func CheckFreeReactions(tst *testing.T, res *fem.Results, prescribed []int) {
	isPrs := make(map[int]bool)
	for _, dof := range prescribed {
		isPrs[dof] = true
	}
	for i, r := range res.R {
		if !isPrs[i+1] && r != 0 {
			tst.Errorf("reaction at free dof %d must be zero. %v is incorrect\n", i+1, r)
		}
	}
}
