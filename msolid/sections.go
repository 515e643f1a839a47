// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CrossSection computes the cross-sectional area and moments of inertia of bars
//
//   typ : rectangle
//         circle                             tw
//         tube                           -->| |<--
//         I-beam                     ___    | |     ___
//   ^ 1       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> 2  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
//   tube: outer radius R = rad and wall thickness tw
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam", "circle" or "tube"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam; wall thickness if tube
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	I22 float64 // major cross-section moment of inertia
	I11 float64 // minor cross-section moment of inertia
}

// Init initialises structure and computes area and moments of inertia
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		if !(wid > 0 && hei > 0) {
			return chk.Err("rectangle: width and height must be positive. b=%g h=%g are invalid", wid, hei)
		}
		b, h := wid, hei
		o.A = b * h
		o.I22 = b * h * h * h / 12.0
		o.I11 = b * b * b * h / 12.0

	case "I-beam":
		if !(wid > 0 && hei > 2.0*tf && tf > 0 && tw > 0 && tw <= wid) {
			return chk.Err("I-beam: dimensions b=%g h=%g tf=%g tw=%g are invalid", wid, hei, tf, tw)
		}
		b, h := wid, hei
		l := h - 2.0*tf
		o.A = b*h - l*(b-tw)
		o.I22 = b*h*h*h/12.0 - (b-tw)*l*l*l/12.0
		o.I11 = l*tw*tw*tw/12.0 + tf*b*b*b/6.0

	case "circle":
		if !(rad > 0) {
			return chk.Err("circle: radius must be positive. r=%g is invalid", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22

	case "tube":
		if !(rad > 0 && tw > 0 && tw <= rad) {
			return chk.Err("tube: radius and wall thickness r=%g tw=%g are invalid", rad, tw)
		}
		ri := rad - tw
		o.A = math.Pi * (rad*rad - ri*ri)
		o.I22 = math.Pi * (rad*rad*rad*rad - ri*ri*ri*ri) / 4.0
		o.I11 = o.I22

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// RefMaterial holds parameters of some reference materials in SI units (Pa and kg/m³)
type RefMaterial struct {
	Type string  // type of material; e.g. "steel"
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density
}

// Init initialises material parameters
func (o *RefMaterial) Init(typ string) (err error) {
	o.Type = typ
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E, o.Nu, o.Rho = 200e9, 0.32, 7850
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E, o.Nu, o.Rho = 73.1e9, 0.35, 2790
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E, o.Nu, o.Rho = 22.1e9, 0.15, 2380
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E, o.Nu, o.Rho = 30e9, 0.15, 2380
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E, o.Nu, o.Rho = 13.1e9, 0.29, 470
	default:
		return chk.Err("material type %q is unavailable", typ)
	}
	return
}
