// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetK      = "K"
	SheetDisp   = "Displacements"
	SheetReac   = "Reactions"
	SheetElems  = "Elements"
	defaultName = "Sheet1"
)

// WriteXlsx saves results to an Excel workbook with one sheet per kind of result
func WriteXlsx(fnpath string, res *fem.Results) (err error) {
	if res == nil {
		return chk.Err("results must not be nil")
	}
	f := excelize.NewFile()
	defer f.Close()

	// stiffness matrix
	err = f.SetSheetName(defaultName, SheetK)
	if err != nil {
		return
	}
	header := []interface{}{""}
	for j := range res.K {
		header = append(header, io.Sf("dof%d", j+1))
	}
	rows := [][]interface{}{header}
	for i, Ki := range res.K {
		row := []interface{}{io.Sf("dof%d", i+1)}
		for _, v := range Ki {
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	err = writeSheet(f, SheetK, rows)
	if err != nil {
		return
	}

	// nodal vectors
	for _, s := range []struct {
		name, label string
		keys        []string
		vals        []float64
	}{
		{SheetDisp, "a", res.DofKeys, res.A},
		{SheetReac, "r", res.FKeys, res.R},
	} {
		_, err = f.NewSheet(s.name)
		if err != nil {
			return
		}
		rows = [][]interface{}{{"dof", "key", s.label, "f"}}
		for i, v := range s.vals {
			key, fi := "", 0.0
			if i < len(s.keys) {
				key = s.keys[i]
			}
			if i < len(res.F) {
				fi = res.F[i]
			}
			rows = append(rows, []interface{}{i + 1, key, v, fi})
		}
		err = writeSheet(f, s.name, rows)
		if err != nil {
			return
		}
	}

	// elements
	_, err = f.NewSheet(SheetElems)
	if err != nil {
		return
	}
	rows = [][]interface{}{{"element", "name", "L", "N", "sig"}}
	for i, e := range res.Elems {
		rows = append(rows, []interface{}{i + 1, e.Name, e.L, e.N, e.Sig})
	}
	err = writeSheet(f, SheetElems, rows)
	if err != nil {
		return
	}

	err = f.SaveAs(fnpath)
	if err != nil {
		return chk.Err("cannot save workbook <%s>:\n%v", fnpath, err)
	}
	return
}

// writeSheet writes rows to sheet using a stream writer
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) (err error) {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		err = sw.SetRow(cell, row)
		if err != nil {
			return chk.Err("cannot write row %d of sheet %q:\n%v", i+1, sheet, err)
		}
	}
	return sw.Flush()
}
