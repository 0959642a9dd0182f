// SPDX-License-Identifier: MIT
// Package: lvmapper/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach the method name via builderErrorf.
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"github.com/katalvlaran/lvmapper/errors"
)

// ErrTooFewPoints indicates that a size parameter (n, perBlob, dim) is below 1.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNoCenters indicates Blobs was called without centers or with ragged ones.
var ErrNoCenters = errors.New("builder: blobs need equal-length centers")

// Method tokens used for error context.
const (
	MethodCircle = "Circle"
	MethodBlobs  = "Blobs"
	MethodLine   = "Line"
)

// builderErrorf wraps err with the constructor name.
func builderErrorf(method string, err error) error {
	return errors.Wrapf(err, "builder.%s", method)
}
