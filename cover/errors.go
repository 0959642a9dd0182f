// SPDX-License-Identifier: MIT

package cover

import "github.com/katalvlaran/lvmapper/errors"

// Sentinel errors for cover construction and assignment.
var (
	// ErrEmptyInput indicates Build or Assign received no filter values.
	ErrEmptyInput = errors.Wrap(errors.ErrEmptyInput, "cover: no filter values")

	// ErrBadIntervals indicates an interval count below 1, or a per-dimension
	// count list that does not match the filter dimension.
	ErrBadIntervals = errors.Invalid("cover: interval count must be >= 1")

	// ErrBadOverlap indicates an overlap fraction outside [0, 1).
	ErrBadOverlap = errors.Invalid("cover: overlap must be in [0,1)")

	// ErrBadPadding indicates a negative padding fraction.
	ErrBadPadding = errors.Invalid("cover: padding must be >= 0")

	// ErrDimension indicates filter values of inconsistent or zero length, or
	// values whose length differs from the regions' dimension.
	ErrDimension = errors.Invalid("cover: filter value dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf filter value.
	ErrNonFinite = errors.Invalid("cover: filter values must be finite")

	// ErrTooManyRegions indicates the Cartesian product exceeds MaxRegions.
	ErrTooManyRegions = errors.Invalid("cover: too many regions")
)
