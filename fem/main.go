// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a truss analysis using the finite element method
type Main struct {
	Model   *inp.Model // input data
	Domain  *Domain    // the domain
	ShowMsg bool       // show messages
}

// NewMain returns a new Main structure
//  Input:
//   model   -- truss model
//   verbose -- show messages
func NewMain(model *inp.Model, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.Model = model
	o.ShowMsg = verbose
	o.Domain, err = NewDomain(model, verbose)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// Run assembles, solves and recovers element forces
func (o *Main) Run() (res *Results, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}

	// pipeline
	d := o.Domain
	err = d.Assemble()
	if err != nil {
		return
	}
	if o.Model.ListBcs {
		io.Pf("%v", d.EssenBcs.List())
	}
	err = d.Solve()
	if err != nil {
		return
	}
	err = d.Recover()
	if err != nil {
		return
	}
	res = d.Results()
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
