// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_assem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assem01. scatter-add")

	K := mat.NewDense(5, 5, nil)
	Ke := [][]float64{
		{1, 2},
		{3, 4},
	}
	err := Assem([]int{2, 5}, K, Ke)
	if err != nil {
		tst.Errorf("Assem failed:\n%v", err)
		return
	}
	err = Assem([]int{5, 1}, K, Ke)
	if err != nil {
		tst.Errorf("Assem failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("K =\n%v\n", mat.Formatted(K))
	}
	chk.Deep2(tst, "K", 1e-15, denseToRows(K), [][]float64{
		{4, 0, 0, 0, 3},
		{0, 1, 0, 0, 2},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{2, 3, 0, 0, 5},
	})
}

func Test_assem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assem02. errors")

	Ke := [][]float64{{1, 2}, {3, 4}}
	if err := Assem([]int{0, 1}, mat.NewDense(3, 3, nil), Ke); err == nil {
		tst.Errorf("Assem should have failed with dof 0\n")
	}
	if err := Assem([]int{1, 4}, mat.NewDense(3, 3, nil), Ke); err == nil {
		tst.Errorf("Assem should have failed with dof 4 > ndof\n")
	}
	if err := Assem([]int{1, 2, 3}, mat.NewDense(3, 3, nil), Ke); err == nil {
		tst.Errorf("Assem should have failed with 3 dofs and 2×2 matrix\n")
	}
	if err := Assem([]int{1, 2}, mat.NewDense(3, 3, nil), [][]float64{{1, 2}, {3}}); err == nil {
		tst.Errorf("Assem should have failed with ragged matrix\n")
	}
	if err := Assem([]int{1, 2}, mat.NewDense(3, 2, nil), Ke); err == nil {
		tst.Errorf("Assem should have failed with non-square global matrix\n")
	}
}

func Test_extract01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("extract01. round trip")

	a := []float64{0, 0, 0, 0, -0.000397927461139896, -0.00115233160621762, 0, 0}
	edof := []int{3, 4, 5, 6}
	ed, err := Extract(edof, a)
	if err != nil {
		tst.Errorf("Extract failed:\n%v", err)
		return
	}
	chk.Array(tst, "ed", 1e-17, ed, []float64{0, 0, -0.000397927461139896, -0.00115233160621762})

	// re-insert into a zeroed vector and extract again
	b := make([]float64, len(a))
	err = Insert(edof, b, ed)
	if err != nil {
		tst.Errorf("Insert failed:\n%v", err)
		return
	}
	ed2, _ := Extract(edof, b)
	for i := range ed {
		if ed[i] != ed2[i] {
			tst.Errorf("round trip is not exact: ed[%d] = %v != %v\n", i, ed[i], ed2[i])
		}
	}

	// order is preserved
	ed, _ = Extract([]int{6, 5, 1}, a)
	chk.Array(tst, "ed (reversed)", 1e-17, ed, []float64{-0.00115233160621762, -0.000397927461139896, 0})

	// errors
	if _, err = Extract([]int{1, 9}, a); err == nil {
		tst.Errorf("Extract should have failed with dof 9\n")
	}
	if err = Insert([]int{1, 2}, b, []float64{1}); err == nil {
		tst.Errorf("Insert should have failed with wrong sub-vector size\n")
	}
	if err = Insert([]int{0, 2}, b, []float64{1, 2}); err == nil {
		tst.Errorf("Insert should have failed with dof 0\n")
	}
}

func Test_essenbcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("essenbcs01. set and build")

	bcs := NewEssentialBcs(8, 7, 1, 2)
	bcs.Set(4, 0)
	bcs.Set(3, 0)
	bcs.Set(7, 0.5) // replace
	err := bcs.Build(8)
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}
	io.Pf("%v", bcs.List())
	chk.Ints(tst, "dofs", bcs.Dofs(), []int{1, 2, 3, 4, 7, 8})
	chk.Ints(tst, "prescribed eqs", bcs.PrsEqs, []int{0, 1, 2, 3, 6, 7})
	chk.Ints(tst, "free eqs", bcs.FreeEqs, []int{4, 5})
	chk.Float64(tst, "value @ dof 7", 1e-17, bcs.Bcs[4].Val, 0.5)

	err = NewEssentialBcs(1, 9).Build(8)
	if err == nil {
		tst.Errorf("Build should have failed with dof 9\n")
	}
}
