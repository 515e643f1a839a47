// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of truss models read from (.yaml or .json) files
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// NdofBar is the number of degrees of freedom of a 2D bar element (two nodes with ux and uy)
const NdofBar = 4

// ElemData holds element data
type ElemData struct {
	Name string    `json:"name" yaml:"name"` // name of element; e.g. "bar1"
	Type string    `json:"type" yaml:"type"` // type of element; e.g. "bar2". empty means "bar2"
	Edof []int     `json:"edof" yaml:"edof"` // [4] topology: global degrees of freedom (1-based)
	Ex   []float64 `json:"ex" yaml:"ex"`     // [2] x-coordinates of start and end nodes
	Ey   []float64 `json:"ey" yaml:"ey"`     // [2] y-coordinates of start and end nodes
	Ep   []float64 `json:"ep" yaml:"ep"`     // [2] element properties: Young's modulus E and cross-sectional area A

	// optional: properties computed when ep is incomplete
	Mat string   `json:"mat,omitempty" yaml:"mat,omitempty"` // reference material giving E if len(ep) < 1; e.g. "steel"
	Sec *SecData `json:"sec,omitempty" yaml:"sec,omitempty"` // cross-section giving A if len(ep) < 2
}

// SecData holds the definition of a cross-section
type SecData struct {
	Type string  `json:"type" yaml:"type"`                   // "rectangle", "I-beam", "circle" or "tube"
	Wid  float64 `json:"wid,omitempty" yaml:"wid,omitempty"` // width
	Hei  float64 `json:"hei,omitempty" yaml:"hei,omitempty"` // height
	Tf   float64 `json:"tf,omitempty" yaml:"tf,omitempty"`   // flange thickness
	Tw   float64 `json:"tw,omitempty" yaml:"tw,omitempty"`   // web or wall thickness
	R    float64 `json:"r,omitempty" yaml:"r,omitempty"`     // radius
}

// DofVal holds a value attached to one degree of freedom; e.g. a prescribed displacement or a load
type DofVal struct {
	Dof int     `json:"dof" yaml:"dof"` // degree of freedom (1-based)
	Val float64 `json:"val" yaml:"val"` // value
}

// Model holds all data defining a plane truss model
type Model struct {

	// input
	Desc    string      `json:"desc" yaml:"desc"`                           // description of model
	Ndof    int         `json:"ndof" yaml:"ndof"`                           // total number of degrees of freedom
	Elems   []*ElemData `json:"elems" yaml:"elems"`                         // all elements
	Bcs     []*DofVal   `json:"bcs" yaml:"bcs"`                             // prescribed displacements (boundary conditions)
	Loads   []*DofVal   `json:"loads" yaml:"loads"`                         // external point loads
	ListBcs bool        `json:"listbcs,omitempty" yaml:"listbcs,omitempty"` // list boundary conditions

	// derived
	Key string `json:"-" yaml:"-"` // model key; e.g. "exs3" for exs3.yaml
}

// ReadModel reads a model from a .yaml, .yml or .json file
func ReadModel(fnpath string) (o *Model, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnpath, err)
	}
	ext := strings.ToLower(filepath.Ext(fnpath))
	o, err = ParseModel(b, ext)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnpath, err)
	}
	o.Key = strings.TrimSuffix(filepath.Base(fnpath), filepath.Ext(fnpath))
	return
}

// ParseModel decodes and validates a model
//  format -- ".json" or ".yaml" (also "json", "yaml", "yml")
func ParseModel(b []byte, format string) (o *Model, err error) {
	o = new(Model)
	switch strings.TrimPrefix(format, ".") {
	case "json":
		err = json.Unmarshal(b, o)
	case "yaml", "yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("model format %q is not available. use json or yaml", format)
	}
	if err != nil {
		return nil, err
	}
	o.SetDefaults()
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Encode encodes model into "json" or "yaml" format
func (o *Model) Encode(format string) (b []byte, err error) {
	switch strings.TrimPrefix(format, ".") {
	case "json":
		return json.MarshalIndent(o, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(o)
	}
	return nil, chk.Err("model format %q is not available. use json or yaml", format)
}

// WriteModel writes model to file; the format is selected by the file extension
func (o *Model) WriteModel(fnpath string) (err error) {
	b, err := o.Encode(strings.ToLower(filepath.Ext(fnpath)))
	if err != nil {
		return
	}
	return os.WriteFile(fnpath, b, 0644)
}

// SetDefaults sets default values of optional fields
func (o *Model) SetDefaults() {
	for i, e := range o.Elems {
		if e.Type == "" {
			e.Type = "bar2"
		}
		if e.Name == "" {
			e.Name = io.Sf("bar%d", i+1)
		}
	}
	if o.Ndof == 0 {
		for _, e := range o.Elems {
			for _, d := range e.Edof {
				if d > o.Ndof {
					o.Ndof = d
				}
			}
		}
	}
}

// Validate checks topology, coordinates, properties, boundary conditions and loads
func (o *Model) Validate() (err error) {
	if o.Ndof < 1 {
		return chk.Err("number of degrees of freedom must be positive. ndof = %d is invalid", o.Ndof)
	}
	if len(o.Elems) == 0 {
		return chk.Err("model must have at least one element")
	}
	for i, e := range o.Elems {
		if len(e.Edof) != NdofBar {
			return chk.Err("element %d (%s): topology must have %d dofs. %d given", i, e.Name, NdofBar, len(e.Edof))
		}
		for _, d := range e.Edof {
			if d < 1 || d > o.Ndof {
				return chk.Err("element %d (%s): dof %d is out of range [1, %d]", i, e.Name, d, o.Ndof)
			}
		}
		if len(e.Ex) != 2 || len(e.Ey) != 2 {
			return chk.Err("element %d (%s): ex and ey must have 2 coordinates each", i, e.Name)
		}
		if len(e.Ep) > 2 {
			return chk.Err("element %d (%s): ep must be [E, A]. %v given", i, e.Name, e.Ep)
		}
		if len(e.Ep) < 1 && e.Mat == "" {
			return chk.Err("element %d (%s): E must be given in ep = [E, A] or by a reference material", i, e.Name)
		}
		if len(e.Ep) < 2 && e.Sec == nil {
			return chk.Err("element %d (%s): A must be given in ep = [E, A] or by a cross-section. ep = %v given", i, e.Name, e.Ep)
		}
		for _, v := range append(append([]float64{}, e.Ex...), e.Ey...) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("element %d (%s): coordinates must be finite", i, e.Name)
			}
		}
	}
	seen := make(map[int]bool)
	for _, bc := range o.Bcs {
		if bc.Dof < 1 || bc.Dof > o.Ndof {
			return chk.Err("boundary condition: dof %d is out of range [1, %d]", bc.Dof, o.Ndof)
		}
		if seen[bc.Dof] {
			return chk.Err("boundary condition: dof %d is prescribed more than once", bc.Dof)
		}
		seen[bc.Dof] = true
	}
	for _, ld := range o.Loads {
		if ld.Dof < 1 || ld.Dof > o.Ndof {
			return chk.Err("load: dof %d is out of range [1, %d]", ld.Dof, o.Ndof)
		}
	}
	return
}

// Edof returns the topology matrix [nel][4]
func (o *Model) Edof() (edof [][]int) {
	edof = make([][]int, len(o.Elems))
	for i, e := range o.Elems {
		edof[i] = e.Edof
	}
	return
}

// LoadVector returns the global load vector f [ndof]; loads on the same dof are added
func (o *Model) LoadVector() (f []float64) {
	f = make([]float64, o.Ndof)
	for _, ld := range o.Loads {
		f[ld.Dof-1] += ld.Val
	}
	return
}

// BcDofs returns the list of prescribed dofs (1-based) and their values
func (o *Model) BcDofs() (dofs []int, vals []float64) {
	dofs = make([]int, len(o.Bcs))
	vals = make([]float64, len(o.Bcs))
	for i, bc := range o.Bcs {
		dofs[i], vals[i] = bc.Dof, bc.Val
	}
	return
}
