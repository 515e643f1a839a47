// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of truss analysis results
package out

import (
	"bytes"
	goio "io"

	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// WriteReport writes the text report with the global stiffness matrix, displacements,
// reactions and axial forces
func WriteReport(w goio.Writer, res *fem.Results) (err error) {
	if res == nil {
		return chk.Err("results must not be nil")
	}
	b := new(bytes.Buffer)
	if len(res.K) > 0 {
		K := rowsToDense(res.K)
		b.WriteString(io.Sf("Stiffness matrix K:\n%v\n\n", mat.Formatted(K, mat.Squeeze())))
	}
	b.WriteString(io.Sf("Displacements a:\n%v\n\n", mat.Formatted(column(res.A), mat.Squeeze())))
	b.WriteString(io.Sf("Reaction forces r:\n%v\n\n", mat.Formatted(column(res.R), mat.Squeeze())))
	for i, e := range res.Elems {
		b.WriteString(io.Sf("N%d = %v\n", i+1, e.N))
	}
	_, err = w.Write(b.Bytes())
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// rowsToDense converts a nested slice into a dense matrix
func rowsToDense(rows [][]float64) *mat.Dense {
	m, n := len(rows), len(rows[0])
	K := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		K.SetRow(i, rows[i])
	}
	return K
}

// column returns v as a column vector; empty vectors become a 1×1 zero
func column(v []float64) mat.Matrix {
	if len(v) == 0 {
		return mat.NewVecDense(1, nil)
	}
	return mat.NewVecDense(len(v), v)
}
