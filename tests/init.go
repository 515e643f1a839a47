// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// RunModel reads a model file and runs the analysis; fnpath == "" runs the built-in exs3 model
func RunModel(tst *testing.T, fnpath string, verbose bool) (main *fem.Main, res *fem.Results) {
	model := inp.Exs3()
	if fnpath != "" {
		var err error
		model, err = inp.ReadModel(fnpath)
		if err != nil {
			tst.Fatalf("ReadModel failed:\n%v", err)
		}
	}
	main, err := fem.NewMain(model, verbose)
	if err != nil {
		tst.Fatalf("NewMain failed:\n%v", err)
	}
	res, err = main.Run()
	if err != nil {
		tst.Fatalf("Run failed:\n%v", err)
	}
	return
}
