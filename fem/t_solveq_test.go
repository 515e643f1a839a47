// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gotruss/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// exs3 reference results
var (
	exs3K = [][]float64{
		{+75e6, 0, 0, 0, -75e6, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, +64e6, -48e6, -64e6, +48e6, 0, 0},
		{0, 0, -48e6, +36e6, +48e6, -36e6, 0, 0},
		{-75e6, 0, -64e6, +48e6, +139e6, -48e6, 0, 0},
		{0, 0, +48e6, -36e6, -48e6, +86e6, 0, -50e6},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, -50e6, 0, +50e6},
	}
	exs3a = []float64{0, 0, 0, 0, -0.000397927461139896, -0.00115233160621762, 0, 0}
	exs3r = []float64{29844.5595854922, 0, -29844.5595854922, 22383.4196891192, 0, 0, 0, 57616.5803108808}
	exs3N = []float64{-29844.5595854922, 57616.5803108808, 37305.6994818653}
)

func Test_solveq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveq01. exs3 step by step")

	// topology, load, properties and coordinates
	edof := [][]int{
		{1, 2, 5, 6},
		{5, 6, 7, 8},
		{3, 4, 5, 6},
	}
	K := mat.NewDense(8, 8, nil)
	f := make([]float64, 8)
	f[5] = -80e3
	E := 2.0e11
	ep := [][]float64{{E, 6.0e-4}, {E, 3.0e-4}, {E, 10.0e-4}}
	ex := [][]float64{{0, 1.6}, {1.6, 1.6}, {0, 1.6}}
	ey := [][]float64{{0, 0}, {0, 1.2}, {1.2, 0}}

	// element stiffness matrices and assembly
	for i := 0; i < 3; i++ {
		Ke, err := ele.Bar2e(ex[i], ey[i], ep[i])
		if err != nil {
			tst.Errorf("Bar2e failed:\n%v", err)
			return
		}
		err = Assem(edof[i], K, Ke)
		if err != nil {
			tst.Errorf("Assem failed:\n%v", err)
			return
		}
	}
	io.Pforan("K =\n%v\n", mat.Formatted(K, mat.Squeeze()))
	chk.Deep2(tst, "K", 1e-6, denseToRows(K), exs3K)

	// solve
	a, r, err := SolveqZero(K, f, []int{1, 2, 3, 4, 7, 8})
	if err != nil {
		tst.Errorf("Solveq failed:\n%v", err)
		return
	}
	io.Pforan("a = %v\n", a)
	io.Pforan("r = %v\n", r)
	chk.Array(tst, "a", 1e-15, a, exs3a)
	chk.Array(tst, "r", 1e-6, r, exs3r)

	// element forces
	for i := 0; i < 3; i++ {
		ed, err := Extract(edof[i], a)
		if err != nil {
			tst.Errorf("Extract failed:\n%v", err)
			return
		}
		N, err := ele.Bar2s(ex[i], ey[i], ep[i], ed)
		if err != nil {
			tst.Errorf("Bar2s failed:\n%v", err)
			return
		}
		io.Pforan("N%d = %v\n", i+1, N)
		chk.Float64(tst, io.Sf("N%d", i+1), 1e-6, N, exs3N[i])
	}
}

func Test_solveq02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveq02. prescribed displacements")

	// two collinear bars with EA/L = 1
	//   o-------o-------o
	//   1,2    3,4     5,6
	K := mat.NewDense(6, 6, nil)
	for _, edof := range [][]int{{1, 2, 3, 4}, {3, 4, 5, 6}} {
		Ke, _ := ele.Bar2e([]float64{0, 1}, []float64{0, 0}, []float64{1, 1})
		Assem(edof, K, Ke)
	}
	f := make([]float64, 6)

	// pull right end by 0.02
	bcs := NewEssentialBcs(1, 2, 4, 6)
	bcs.Set(5, 0.02)
	a, r, err := Solveq(K, f, bcs)
	if err != nil {
		tst.Errorf("Solveq failed:\n%v", err)
		return
	}
	chk.Array(tst, "a", 1e-15, a, []float64{0, 0, 0.01, 0, 0.02, 0})
	chk.Array(tst, "r", 1e-15, r, []float64{-0.01, 0, 0, 0, 0.01, 0})

	// all dofs prescribed
	bcs = NewEssentialBcs(1, 2, 3, 4, 6)
	bcs.Set(5, 0.02)
	a, r, err = Solveq(K, f, bcs)
	if err != nil {
		tst.Errorf("Solveq failed:\n%v", err)
		return
	}
	chk.Array(tst, "a", 1e-15, a, []float64{0, 0, 0, 0, 0.02, 0})
	chk.Array(tst, "r", 1e-15, r, []float64{0, 0, -0.02, 0, 0.02, 0})

	// K is not modified
	chk.Float64(tst, "K[2][2]", 1e-15, K.At(2, 2), 2)
}

func Test_solveq03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveq03. under-constrained and invalid systems")

	// single bar fixed at one node only: free node can move sideways
	K := mat.NewDense(4, 4, nil)
	Ke, _ := ele.Bar2e([]float64{0, 1}, []float64{0, 0}, []float64{1, 1})
	Assem([]int{1, 2, 3, 4}, K, Ke)
	f := []float64{0, 0, 1, 0}
	_, _, err := SolveqZero(K, f, []int{1, 2})
	if err == nil {
		tst.Errorf("Solveq should have failed with a mechanism\n")
		return
	}
	io.Pforan("%v\n", err)

	// no constraints at all
	_, _, err = Solveq(K, f, nil)
	if err == nil {
		tst.Errorf("Solveq should have failed without constraints\n")
	}

	// invalid dimensions
	if _, _, err = SolveqZero(K, []float64{0, 0, 1}, []int{1, 2, 4}); err == nil {
		tst.Errorf("Solveq should have failed with wrong load vector\n")
	}
	if _, _, err = SolveqZero(mat.NewDense(4, 3, nil), f, []int{1}); err == nil {
		tst.Errorf("Solveq should have failed with non-square matrix\n")
	}
	if _, _, err = SolveqZero(K, f, []int{1, 2, 5}); err == nil {
		tst.Errorf("Solveq should have failed with dof 5\n")
	}

	// fully constrained in y: well posed
	a, r, err := SolveqZero(K, f, []int{1, 2, 4})
	if err != nil {
		tst.Errorf("Solveq failed:\n%v", err)
		return
	}
	chk.Array(tst, "a", 1e-15, a, []float64{0, 0, 1, 0})
	chk.Array(tst, "r", 1e-15, r, []float64{-1, 0, 0, 0})
	if math.Abs(r[2]) != 0 {
		tst.Errorf("reaction at free dof must be exactly zero\n")
	}
}
