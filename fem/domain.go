// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gotruss/ele"
	"github.com/cpmech/gotruss/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Domain holds all elements of a truss model in addition to the global system and its solution
type Domain struct {

	// init
	Model   *inp.Model    // input data
	ShowMsg bool          // show messages
	Elems   []ele.Element // all elements
	Ndof    int           // total number of dofs
	DofKeys []string      // [ndof] keys of dofs; e.g. "ux", "uy"
	FKeys   []string      // [ndof] keys of forces; e.g. "fx", "fy"

	// essential bcs and prescribed forces
	EssenBcs EssentialBcs // constraints
	F        []float64    // [ndof] global load vector

	// global system
	K *mat.Dense // [ndof][ndof] global stiffness matrix

	// solution
	A []float64 // [ndof] displacements
	R []float64 // [ndof] reactions

	// element results
	Ed  [][]float64 // [nel][4] element displacements
	N   []float64   // [nel] axial forces
	Sig []float64   // [nel] axial stresses
}

// NewDomain returns a new domain with elements allocated from model
func NewDomain(model *inp.Model, verbose bool) (o *Domain, err error) {

	// check
	if model == nil {
		return nil, chk.Err("model must not be nil")
	}
	err = model.Validate()
	if err != nil {
		return
	}

	// basic data
	o = new(Domain)
	o.Model = model
	o.ShowMsg = verbose
	o.Ndof = model.Ndof

	// elements
	o.Elems = make([]ele.Element, len(model.Elems))
	for i, edat := range model.Elems {
		o.Elems[i], err = ele.New(i, edat)
		if err != nil {
			return nil, err
		}
	}

	// dof keys
	o.DofKeys = make([]string, o.Ndof)
	y2f := make(map[string]string)
	for _, edat := range model.Elems {
		info, err := ele.GetInfo(edat)
		if err != nil {
			return nil, err
		}
		info.DofKeys(o.DofKeys, edat.Edof)
		for ykey, fkey := range info.Y2F {
			y2f[ykey] = fkey
		}
	}
	o.FKeys = make([]string, o.Ndof)
	for i, key := range o.DofKeys {
		o.FKeys[i] = y2f[key]
	}

	// essential bcs
	o.EssenBcs.Keys = o.DofKeys
	for _, bc := range model.Bcs {
		o.EssenBcs.Set(bc.Dof, bc.Val)
	}
	err = o.EssenBcs.Build(o.Ndof)
	if err != nil {
		return nil, err
	}

	// message
	if o.ShowMsg {
		io.Pf("> Domain allocated: %d elements, %d dofs, %d prescribed\n", len(o.Elems), o.Ndof, len(o.EssenBcs.Bcs))
	}
	return
}

// Assemble builds the global stiffness matrix K and the global load vector F
func (o *Domain) Assemble() (err error) {
	o.K = mat.NewDense(o.Ndof, o.Ndof, nil)
	for _, e := range o.Elems {
		err = e.AddToKb(o.K)
		if err != nil {
			return
		}
	}
	o.F = o.Model.LoadVector()
	if o.ShowMsg {
		io.Pf("> Global stiffness matrix assembled\n")
	}
	return
}

// Solve computes displacements and reactions
func (o *Domain) Solve() (err error) {
	if o.K == nil {
		return chk.Err("global stiffness matrix must be assembled before solving")
	}
	o.A, o.R, err = Solveq(o.K, o.F, &o.EssenBcs)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Linear system solved\n")
	}
	return
}

// Recover extracts element displacements and computes axial forces and stresses
func (o *Domain) Recover() (err error) {
	if o.A == nil {
		return chk.Err("displacements must be computed before recovering element forces")
	}
	nel := len(o.Elems)
	o.Ed = make([][]float64, nel)
	o.N = make([]float64, nel)
	o.Sig = make([]float64, nel)
	for i, e := range o.Elems {
		o.Ed[i], err = Extract(e.Edof(), o.A)
		if err != nil {
			return
		}
		if f, ok := e.(ele.CanRecoverForce); ok {
			o.N[i] = f.CalcN(o.Ed[i])
			o.Sig[i] = f.CalcSig(o.Ed[i])
		}
	}
	if o.ShowMsg {
		io.Pf("> Element forces recovered\n")
	}
	return
}

// Results returns a copy of the current results
func (o *Domain) Results() (res *Results) {
	res = new(Results)
	res.Desc = o.Model.Desc
	res.Key = o.Model.Key
	if o.K != nil {
		res.K = denseToRows(o.K)
	}
	res.DofKeys = append([]string{}, o.DofKeys...)
	res.FKeys = append([]string{}, o.FKeys...)
	res.F = append([]float64{}, o.F...)
	res.A = append([]float64{}, o.A...)
	res.R = append([]float64{}, o.R...)
	res.Elems = make([]*ElemResults, len(o.Elems))
	for i, e := range o.Elems {
		er := &ElemResults{Name: o.Model.Elems[i].Name, Edof: append([]int{}, e.Edof()...)}
		if bar, ok := e.(*ele.ElastBar); ok {
			er.L = bar.L
		}
		if o.Ed != nil {
			er.Ed = append([]float64{}, o.Ed[i]...)
			er.N = o.N[i]
			er.Sig = o.Sig[i]
		}
		res.Elems[i] = er
	}
	return
}

// denseToRows converts a dense matrix into a slice of rows
func denseToRows(m *mat.Dense) (rows [][]float64) {
	nr, nc := m.Dims()
	rows = make([][]float64, nr)
	for i := 0; i < nr; i++ {
		rows[i] = make([]float64, nc)
		mat.Row(rows[i], i, m)
	}
	return
}
