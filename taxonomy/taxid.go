// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import (
	"strconv"
	"strings"
)

// Taxid is an NCBI taxonomy identifier.
type Taxid int

const (
	// Unclassified is the taxid classifiers report for reads they could not place.
	Unclassified Taxid = 0

	// Root is the taxid of the root of the taxonomy. Its parent is itself.
	Root Taxid = 1
)

// ParseTaxid returns the Taxid represented by s. Surrounding white space is
// ignored. Non-numeric or negative values return an *InvalidTaxidError.
func ParseTaxid(s string) (Taxid, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, &InvalidTaxidError{Value: s}
	}
	return Taxid(v), nil
}

func (t Taxid) String() string { return strconv.Itoa(int(t)) }
