// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gosl/chk"
)

// Info holds information about the degrees of freedom of an element
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy"], ["ux", "uy"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx"
}

// DofKeys returns the key of each global dof (0-based) touched by an element with topology edof
// (1-based); e.g. keys["ux", "uy", ...]. Other entries of keys are left unchanged
func (o *Info) DofKeys(keys []string, edof []int) {
	k := 0
	for _, ykeys := range o.Dofs {
		for _, key := range ykeys {
			if k < len(edof) && edof[k] > 0 && edof[k] <= len(keys) {
				keys[edof[k]-1] = key
			}
			k++
		}
	}
}

// InfoFuncType defines a function that returns information about an element
type InfoFuncType func(edat *inp.ElemData) *Info

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// GetInfo returns information about an element
func GetInfo(edat *inp.ElemData) (info *Info, err error) {
	fcn, ok := infofactory[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get information function for element {type=%q, name=%q}", edat.Type, edat.Name)
	}
	return fcn(edat), nil
}

// infofactory holds all element information functions
var infofactory = make(map[string]InfoFuncType)
