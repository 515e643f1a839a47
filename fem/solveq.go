// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Solveq solves K・a = f + r with the essential bcs in bcs
//  Input:
//   K   -- [ndof][ndof] global stiffness matrix; not modified
//   f   -- [ndof] global load vector
//   bcs -- prescribed dofs and values
//  Output:
//   a -- [ndof] displacements; a = prescribed values at prescribed dofs
//   r -- [ndof] reactions; r = K・a - f at prescribed dofs and zero at free dofs
//  Note: an error is returned if the reduced matrix Kff is singular or not positive-definite;
//        i.e. the structure is under-constrained or has a mechanism
func Solveq(K *mat.Dense, f []float64, bcs *EssentialBcs) (a, r []float64, err error) {

	// check
	ndof, nc := K.Dims()
	if ndof != nc {
		return nil, nil, chk.Err("stiffness matrix must be square. %d×%d is invalid", ndof, nc)
	}
	if len(f) != ndof {
		return nil, nil, chk.Err("load vector must have %d components. %d given", ndof, len(f))
	}
	if bcs == nil {
		bcs = new(EssentialBcs)
	}
	err = bcs.Build(ndof)
	if err != nil {
		return
	}

	// prescribed values
	a = make([]float64, ndof)
	for _, bc := range bcs.Bcs {
		a[bc.Dof-1] = bc.Val
	}

	// reduced system: Kff・af = ff - Kfp・ap
	nf := len(bcs.FreeEqs)
	if nf > 0 {
		Kff := mat.NewSymDense(nf, nil)
		rhs := mat.NewVecDense(nf, nil)
		for i, I := range bcs.FreeEqs {
			for j := i; j < nf; j++ {
				Kff.SetSym(i, j, K.At(I, bcs.FreeEqs[j]))
			}
			v := f[I]
			for _, P := range bcs.PrsEqs {
				v -= K.At(I, P) * a[P]
			}
			rhs.SetVec(i, v)
		}

		// factorise
		var chol mat.Cholesky
		if ok := chol.Factorize(Kff); !ok {
			return nil, nil, chk.Err("reduced stiffness matrix is singular or not positive-definite: the structure is under-constrained (%d free dofs)", nf)
		}
		if cond := chol.Cond(); math.IsInf(cond, 0) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
			return nil, nil, chk.Err("reduced stiffness matrix is singular: condition number = %g. the structure is under-constrained (%d free dofs)", cond, nf)
		}

		// solve
		af := mat.NewVecDense(nf, nil)
		err = chol.SolveVecTo(af, rhs)
		if err != nil {
			return nil, nil, chk.Err("cannot solve reduced system:\n%v", err)
		}
		for i, I := range bcs.FreeEqs {
			a[I] = af.AtVec(i)
		}
	}

	// reactions: rp = Kp・a - fp
	r = make([]float64, ndof)
	for _, P := range bcs.PrsEqs {
		v := -f[P]
		for j := 0; j < ndof; j++ {
			v += K.At(P, j) * a[j]
		}
		r[P] = v
	}
	return
}

// SolveqZero solves K・a = f + r with zero displacements prescribed at dofs bc (1-based)
func SolveqZero(K *mat.Dense, f []float64, bc []int) (a, r []float64, err error) {
	return Solveq(K, f, NewEssentialBcs(bc...))
}
