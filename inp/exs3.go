// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Exs3 returns the plane truss of the "exs3" worked example
//
//   (3,4) o                  o (7,8)
//         ▷'-,_              ◁
//              '-,_  bar3    |
//                  '-,_      | bar2
//                      '-,_  |
//   (1,2) o------------------o (5,6)
//         ▷      bar1        ↓ 80 kN
//
//   E = 2e11; A1 = 6e-4, A2 = 3e-4, A3 = 10e-4; width = 1.6, height = 1.2
//   only the joint holding dofs 5 and 6 is free; all other joints are pinned
func Exs3() *Model {
	E := 2.0e11
	o := &Model{
		Desc: "exs3: analysis of a plane truss",
		Ndof: 8,
		Elems: []*ElemData{
			{Name: "bar1", Type: "bar2", Edof: []int{1, 2, 5, 6}, Ex: []float64{0, 1.6}, Ey: []float64{0, 0}, Ep: []float64{E, 6.0e-4}},
			{Name: "bar2", Type: "bar2", Edof: []int{5, 6, 7, 8}, Ex: []float64{1.6, 1.6}, Ey: []float64{0, 1.2}, Ep: []float64{E, 3.0e-4}},
			{Name: "bar3", Type: "bar2", Edof: []int{3, 4, 5, 6}, Ex: []float64{0, 1.6}, Ey: []float64{1.2, 0}, Ep: []float64{E, 10.0e-4}},
		},
		Bcs: []*DofVal{
			{Dof: 1}, {Dof: 2}, {Dof: 3}, {Dof: 4}, {Dof: 7}, {Dof: 8},
		},
		Loads: []*DofVal{
			{Dof: 6, Val: -80e3},
		},
		Key: "exs3",
	}
	return o
}
