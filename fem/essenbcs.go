// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// EssentialBc holds information about one prescribed degree of freedom
type EssentialBc struct {
	Dof int     // global dof (1-based)
	Val float64 // prescribed displacement
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs.
// The system is partitioned into prescribed (P) and free (F) equations:
//      _         _
//     |  Kff  Kfp  | / af \   / ff      \
//     |            | |    | = |         |
//     |_ Kpf  Kpp _| \ ap /   \ fp + rp /
//
//  where ap holds the prescribed values and rp the reactions
type EssentialBcs struct {
	Bcs     EbcArray // active essential bcs sorted by dof after Build
	PrsEqs  []int    // prescribed equations (0-based); set by Build
	FreeEqs []int    // free equations (0-based); set by Build
	Keys    []string // [ndof] keys of dofs; e.g. "ux". optional: used by List only
}

// NewEssentialBcs returns bcs with zero prescribed displacements at the given dofs (1-based)
func NewEssentialBcs(dofs ...int) (o *EssentialBcs) {
	o = new(EssentialBcs)
	for _, d := range dofs {
		o.Set(d, 0)
	}
	return
}

// Set sets a constraint if it does not exist yet or replaces the value of an existent one
func (o *EssentialBcs) Set(dof int, val float64) {
	for _, bc := range o.Bcs {
		if bc.Dof == dof {
			bc.Val = val
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{dof, val})
}

// Build sorts bcs and partitions the ndof equations into prescribed and free sets
func (o *EssentialBcs) Build(ndof int) (err error) {
	sort.Sort(o.Bcs)
	isprs := make([]bool, ndof)
	o.PrsEqs = make([]int, 0, len(o.Bcs))
	for _, bc := range o.Bcs {
		if bc.Dof < 1 || bc.Dof > ndof {
			return chk.Err("prescribed dof %d is out of range [1, %d]", bc.Dof, ndof)
		}
		isprs[bc.Dof-1] = true
		o.PrsEqs = append(o.PrsEqs, bc.Dof-1)
	}
	o.FreeEqs = make([]int, 0, ndof-len(o.PrsEqs))
	for eq := 0; eq < ndof; eq++ {
		if !isprs[eq] {
			o.FreeEqs = append(o.FreeEqs, eq)
		}
	}
	return
}

// Dofs returns the prescribed dofs (1-based)
func (o *EssentialBcs) Dofs() (dofs []int) {
	dofs = make([]int, len(o.Bcs))
	for i, bc := range o.Bcs {
		dofs[i] = bc.Dof
	}
	return
}

// List returns a simple list of bcs
func (o *EssentialBcs) List() (l string) {
	l = "\n================================================\n"
	l += io.Sf("%8s%8s%32s\n", "dof", "key", "prescribed value")
	l += "------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		key := "-"
		if bc.Dof > 0 && bc.Dof <= len(o.Keys) && o.Keys[bc.Dof-1] != "" {
			key = o.Keys[bc.Dof-1]
		}
		l += io.Sf("%8d%8s%32.13g\n", bc.Dof, key, bc.Val)
	}
	l += "================================================\n"
	return
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Dof < o[j].Dof }
