// SPDX-License-Identifier: MIT

package filter

import "github.com/katalvlaran/lvmapper/errors"

// Sentinel errors for lens construction and application.
var (
	// ErrEmptyInput indicates Apply received no points.
	ErrEmptyInput = errors.Wrap(errors.ErrEmptyInput, "filter: no points")

	// ErrRagged indicates input rows of differing lengths.
	ErrRagged = errors.Invalid("filter: all points must have the same dimension")

	// ErrNoIndices indicates Projection was built with no coordinate index.
	ErrNoIndices = errors.Invalid("filter: projection needs at least one index")

	// ErrProjectionIndex indicates a projection index outside [0, inputDim).
	ErrProjectionIndex = errors.Invalid("filter: projection index out of range")

	// ErrOutputDim indicates a Func lens whose declared or actual output
	// length is invalid.
	ErrOutputDim = errors.Invalid("filter: lens output dimension mismatch")

	// ErrNilFunc indicates Func was given a nil function.
	ErrNilFunc = errors.Invalid("filter: lens function is nil")

	// ErrComponents indicates a PCA component count outside [1, inputDim].
	ErrComponents = errors.Invalid("filter: PCA components out of range")

	// ErrPower indicates an eccentricity exponent below 1.
	ErrPower = errors.Invalid("filter: eccentricity power must be >= 1")

	// ErrUnknownFilter indicates ByName got an unsupported kind.
	ErrUnknownFilter = errors.Invalid("filter: unknown filter kind")
)
