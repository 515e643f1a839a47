// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// JointBar holds data of one bar connected to the free joint
type JointBar struct {
	X, Y float64 // coordinates of the pinned end
	E, A float64 // Young's modulus and cross-sectional area
}

// TrussJoint computes the solution of a plane truss with a single free joint; all bars
// connect the free joint to pinned supports
//
//      o         o
//       \       /
//        \     /        the joint stiffness is:
//         \   /           Kj = Σ EA/L [c²  cs; cs  s²]
//          \ /          where (c, s) is the direction from the support to the joint
//           o  ← free joint @ (xj, yj) loaded by (Px, Py)
//           |
//           o
type TrussJoint struct {

	// input
	Xj, Yj float64     // coordinates of the free joint
	Px, Py float64     // external loads applied to the free joint
	Bars   []*JointBar // bars

	// derived
	L  []float64    // [nbars] lengths
	Kj [2][2]float64 // joint stiffness
}

// Init initialises this structure and computes the joint stiffness
func (o *TrussJoint) Init(xj, yj, px, py float64, bars []*JointBar) (err error) {
	o.Xj, o.Yj = xj, yj
	o.Px, o.Py = px, py
	o.Bars = bars
	o.L = make([]float64, len(bars))
	o.Kj = [2][2]float64{}
	for i, b := range bars {
		c, s, L := o.cosines(b)
		if !(L > 0) {
			return chk.Err("bar %d has zero length", i)
		}
		k := b.E * b.A / L
		o.L[i] = L
		o.Kj[0][0] += k * c * c
		o.Kj[0][1] += k * c * s
		o.Kj[1][0] += k * c * s
		o.Kj[1][1] += k * s * s
	}
	if math.Abs(o.det()) < 1e-14*(o.Kj[0][0]*o.Kj[1][1]+1) {
		return chk.Err("joint stiffness is singular: the free joint is a mechanism")
	}
	return
}

// Displacement computes the displacement of the free joint by Cramer's rule
func (o TrussJoint) Displacement() (ux, uy float64) {
	d := o.det()
	ux = (o.Px*o.Kj[1][1] - o.Kj[0][1]*o.Py) / d
	uy = (o.Kj[0][0]*o.Py - o.Kj[1][0]*o.Px) / d
	return
}

// Forces computes the axial forces in all bars; positive means tension
func (o TrussJoint) Forces() (N []float64) {
	ux, uy := o.Displacement()
	N = make([]float64, len(o.Bars))
	for i, b := range o.Bars {
		c, s, L := o.cosines(b)
		N[i] = b.E * b.A / L * (c*ux + s*uy)
	}
	return
}

// Reactions computes the support reactions of all bars; i.e. the forces applied by each support
func (o TrussJoint) Reactions() (Rx, Ry []float64) {
	N := o.Forces()
	Rx = make([]float64, len(o.Bars))
	Ry = make([]float64, len(o.Bars))
	for i, b := range o.Bars {
		c, s, _ := o.cosines(b)
		Rx[i], Ry[i] = -N[i]*c, -N[i]*s
	}
	return
}

// cosines returns the direction cosines from the support to the joint and the length of bar
func (o TrussJoint) cosines(b *JointBar) (c, s, L float64) {
	dx, dy := o.Xj-b.X, o.Yj-b.Y
	L = math.Sqrt(dx*dx + dy*dy)
	if L > 0 {
		c, s = dx/L, dy/L
	}
	return
}

func (o TrussJoint) det() float64 {
	return o.Kj[0][0]*o.Kj[1][1] - o.Kj[0][1]*o.Kj[1][0]
}
