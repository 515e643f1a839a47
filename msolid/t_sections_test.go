// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	var rect CrossSection
	err := rect.Init("rectangle", 4, 6, 0, 0, 0)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("4 x 6 rectangle: %+v\n", rect)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 24.0)
	chk.Float64(tst, "rect: I22", 1e-17, rect.I22, 72.0)
	chk.Float64(tst, "rect: I11", 1e-17, rect.I11, 32.0)

	var ibeam CrossSection
	err = ibeam.Init("I-beam", 4, 6, 0.5, 0.3, 0)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("4 x 6 I-beam: %+v\n", ibeam)
	chk.Float64(tst, "I-beam: A  ", 1e-15, ibeam.A, 5.5)
	chk.Float64(tst, "I-beam: I22", 1e-10, ibeam.I22, 33.4583333333)
	chk.Float64(tst, "I-beam: I11", 1e-10, ibeam.I11, 5.3445833333)

	var circle CrossSection
	err = circle.Init("circle", 0, 0, 0, 0, 1)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "circle: A  ", 1e-17, circle.A, math.Pi)
	chk.Float64(tst, "circle: I22", 1e-10, circle.I22, 0.7853981634)

	var tube CrossSection
	err = tube.Init("tube", 0, 0, 0, 0.5, 1)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "tube: A  ", 1e-15, tube.A, 0.75*math.Pi)
	chk.Float64(tst, "tube: I22", 1e-15, tube.I22, 15.0*math.Pi/64.0)

	// errors
	for _, c := range []struct {
		typ                   string
		wid, hei, tf, tw, rad float64
	}{
		{"rectangle", 0, 1, 0, 0, 0},
		{"I-beam", 4, 1, 0.5, 0.3, 0},
		{"circle", 0, 0, 0, 0, -1},
		{"tube", 0, 0, 0, 2, 1},
		{"hexagon", 1, 1, 0, 0, 0},
	} {
		var s CrossSection
		if err = s.Init(c.typ, c.wid, c.hei, c.tf, c.tw, c.rad); err == nil {
			tst.Errorf("Init should have failed with %+v\n", c)
		}
	}
}

func Test_materials01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materials01. reference materials parameters")

	var steel RefMaterial
	err := steel.Init("steel")
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", steel)
	chk.Float64(tst, "E", 1e-17, steel.E, 2e11)
	chk.Float64(tst, "ρ", 1e-17, steel.Rho, 7850)

	if err = steel.Init("kryptonite"); err == nil {
		tst.Errorf("Init should have failed with unknown material\n")
	}
}
