// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gotruss/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// ElastBar represents a plane bar element (pin-jointed; axial loads only) with 2 nodes and
// constant stiffness matrix; i.e. no numerical integration is needed
type ElastBar struct {

	// basic data
	Idx  int         // index of element in model
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu   int         // total number of unknowns == 2 * nnode
	Ndim int         // space dimension

	// parameters and properties
	Mdl *msolid.OnedLinElast // material model with: E and A
	L   float64              // length of bar

	// vectors and matrices
	T [][]float64 // [2][nu] transformation matrix: global system => system aligned to bar
	K [][]float64 // [nu][nu] element K matrix

	// problem variables
	Dofs []int // [nu] topology (1-based global dofs)
	Umap []int // [nu] assembly map (0-based equations)

	// scratchpad
	ua []float64 // [2] local axial displacements
}

// register element and information function
func init() {
	SetAllocator("bar2", func(id int, edat *inp.ElemData) (Element, error) {
		ep, err := barPrms(edat)
		if err != nil {
			return nil, err
		}
		mdl, err := msolid.NewOnedLinElast(ep)
		if err != nil {
			return nil, err
		}
		return NewElastBar(id, edat.Ex, edat.Ey, mdl)
	})
	SetInfoFunc("bar2", func(edat *inp.ElemData) *Info {
		ykeys := []string{"ux", "uy"}
		return &Info{
			Dofs: [][]string{ykeys, ykeys},
			Y2F:  map[string]string{"ux": "fx", "uy": "fy"},
		}
	})
}

// barPrms returns ep = [E, A] completing missing entries with the reference material and the cross-section
func barPrms(edat *inp.ElemData) (ep []float64, err error) {
	if len(edat.Ep) == 2 {
		return edat.Ep, nil
	}
	ep = make([]float64, 2)
	copy(ep, edat.Ep)
	if len(edat.Ep) < 1 {
		var m msolid.RefMaterial
		err = m.Init(edat.Mat)
		if err != nil {
			return nil, err
		}
		ep[0] = m.E
	}
	if edat.Sec == nil {
		return nil, chk.Err("cross-section is required because ep = %v does not contain A", edat.Ep)
	}
	var s msolid.CrossSection
	err = s.Init(edat.Sec.Type, edat.Sec.Wid, edat.Sec.Hei, edat.Sec.Tf, edat.Sec.Tw, edat.Sec.R)
	if err != nil {
		return nil, err
	}
	ep[1] = s.A
	return
}

// NewElastBar returns a new bar element
//  ex -- [2] x-coordinates of nodes
//  ey -- [2] y-coordinates of nodes
func NewElastBar(id int, ex, ey []float64, mdl *msolid.OnedLinElast) (o *ElastBar, err error) {

	// check
	if len(ex) != 2 || len(ey) != 2 {
		return nil, chk.Err("bar element needs 2 x-coordinates and 2 y-coordinates. ex=%v ey=%v are invalid", ex, ey)
	}
	if mdl == nil {
		return nil, chk.Err("bar element needs a material model")
	}

	// basic data
	o = new(ElastBar)
	o.Idx = id
	o.Ndim = 2
	o.Nu = o.Ndim * 2
	o.X = [][]float64{
		{ex[0], ex[1]},
		{ey[0], ey[1]},
	}
	o.Mdl = mdl

	// vectors and matrices
	o.T = utl.Alloc(2, o.Nu)
	o.K = utl.Alloc(o.Nu, o.Nu)
	o.ua = make([]float64, 2)

	// compute K
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the element index
func (o *ElastBar) Id() int { return o.Idx }

// SetEqs set equations
func (o *ElastBar) SetEqs(edof []int) (err error) {
	if len(edof) != o.Nu {
		return chk.Err("bar element %d needs %d dofs. %v is invalid", o.Idx, o.Nu, edof)
	}
	o.Dofs = make([]int, o.Nu)
	o.Umap = make([]int, o.Nu)
	for i, d := range edof {
		if d < 1 {
			return chk.Err("bar element %d: dofs must be 1-based. %v is invalid", o.Idx, edof)
		}
		o.Dofs[i] = d
		o.Umap[i] = d - 1
	}
	return
}

// Edof returns the topology (1-based global dofs)
func (o *ElastBar) Edof() []int { return o.Dofs }

// AddToKb adds element K to global stiffness matrix Kb
func (o *ElastBar) AddToKb(Kb *mat.Dense) (err error) {
	if o.Umap == nil {
		return chk.Err("equations of bar element %d have not been set", o.Idx)
	}
	nr, nc := Kb.Dims()
	for _, I := range o.Umap {
		if I >= nr || I >= nc {
			return chk.Err("bar element %d: equation %d is out of range of %d×%d global matrix", o.Idx, I+1, nr, nc)
		}
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.K[i][j])
		}
	}
	return
}

// specific methods /////////////////////////////////////////////////////////////////////////////////

// Elongation computes the change of length of the bar for given element displacements
//  ed -- [nu] element displacements [u1x, u1y, u2x, u2y]
func (o *ElastBar) Elongation(ed []float64) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j := 0; j < o.Nu; j++ {
			o.ua[i] += o.T[i][j] * ed[j]
		}
	}
	return o.ua[1] - o.ua[0]
}

// CalcSig computes the axial stress for given element displacements
func (o *ElastBar) CalcSig(ed []float64) float64 {
	εa := o.Elongation(ed) / o.L // axial strain
	return o.Mdl.Stress(εa)      // axial stress
}

// CalcN computes the axial force for given element displacements; positive means tension
func (o *ElastBar) CalcN(ed []float64) float64 {
	return o.Mdl.AxialStiffness(o.L) * o.Elongation(ed)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Recompute re-compute matrices after dimensions or parameters are externally changed
func (o *ElastBar) Recompute() (err error) {

	// geometry
	x0 := o.X[0][0]
	y0 := o.X[1][0]
	x1 := o.X[0][1]
	y1 := o.X[1][1]
	dx := x1 - x0
	dy := y1 - y0
	o.L = math.Sqrt(dx*dx + dy*dy)
	if !(o.L > 0) || math.IsInf(o.L, 0) {
		return chk.Err("bar element %d has invalid length L = %g. nodes: (%g,%g) and (%g,%g)", o.Idx, o.L, x0, y0, x1, y1)
	}

	// global-to-local transformation matrix
	c := dx / o.L
	s := dy / o.L
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][2] = c
	o.T[1][3] = s

	// K matrix
	α := o.Mdl.AxialStiffness(o.L)
	o.K[0][0] = +α * c * c
	o.K[0][1] = +α * c * s
	o.K[0][2] = -α * c * c
	o.K[0][3] = -α * c * s
	o.K[1][0] = +α * c * s
	o.K[1][1] = +α * s * s
	o.K[1][2] = -α * c * s
	o.K[1][3] = -α * s * s
	o.K[2][0] = -α * c * c
	o.K[2][1] = -α * c * s
	o.K[2][2] = +α * c * c
	o.K[2][3] = +α * c * s
	o.K[3][0] = -α * c * s
	o.K[3][1] = -α * s * s
	o.K[3][2] = +α * c * s
	o.K[3][3] = +α * s * s
	return
}
