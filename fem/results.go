// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ElemResults holds results of one element
type ElemResults struct {
	Name string    `json:"name"` // name of element
	Edof []int     `json:"edof"` // [4] topology (1-based)
	L    float64   `json:"L"`    // length
	Ed   []float64 `json:"ed"`   // [4] element displacements
	N    float64   `json:"N"`    // axial force
	Sig  float64   `json:"sig"`  // axial stress
}

// Results holds the results of a truss analysis
type Results struct {
	Desc    string         `json:"desc"`              // description of model
	Key     string         `json:"key"`               // model key
	DofKeys []string       `json:"dofkeys,omitempty"` // [ndof] keys of dofs; e.g. "ux"
	FKeys   []string       `json:"fkeys,omitempty"`   // [ndof] keys of forces; e.g. "fx"
	K       [][]float64    `json:"K"`                 // [ndof][ndof] global stiffness matrix
	F       []float64      `json:"f"`                 // [ndof] global load vector
	A       []float64      `json:"a"`                 // [ndof] displacements
	R       []float64      `json:"r"`                 // [ndof] reactions
	Elems   []*ElemResults `json:"elems"`             // [nel] element results
}

// Forces returns all axial forces
func (o *Results) Forces() (N []float64) {
	N = make([]float64, len(o.Elems))
	for i, e := range o.Elems {
		N[i] = e.N
	}
	return
}
