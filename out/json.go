// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gosl/chk"
)

// WriteJSON saves results to a JSON file
func WriteJSON(fnpath string, res *fem.Results) (err error) {
	if res == nil {
		return chk.Err("results must not be nil")
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	err = os.WriteFile(fnpath, append(b, '\n'), 0644)
	if err != nil {
		return chk.Err("cannot write results file <%s>:\n%v", fnpath, err)
	}
	return
}

// ReadJSON loads results from a JSON file; e.g. written by WriteJSON or a comparison (.cmp) file
func ReadJSON(fnpath string) (res *fem.Results, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read results file <%s>:\n%v", fnpath, err)
	}
	res = new(fem.Results)
	err = json.Unmarshal(b, res)
	if err != nil {
		return nil, chk.Err("cannot unmarshal results file <%s>:\n%v", fnpath, err)
	}
	return
}
