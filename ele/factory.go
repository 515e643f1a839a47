// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element
type AllocatorType func(id int, edat *inp.ElemData) (Element, error)

// New returns a new element from factory
func New(id int, edat *inp.ElemData) (ele Element, err error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, name=%q, id=%d}", edat.Type, edat.Name, id)
		return
	}
	ele, err = fcn(id, edat)
	if err != nil {
		err = chk.Err("cannot allocate element {type=%q, name=%q, id=%d}:\n%v", edat.Type, edat.Name, id, err)
		return
	}
	err = ele.SetEqs(edat.Edof)
	return
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(elementName string) AllocatorType {
	if fcn, ok := allocators[elementName]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", elementName)
	return nil
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
