// Package errors provides error handling for lvmapper.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for the CLI
//
// It also declares the two error classes every pipeline stage reports through:
// ErrInvalidConfiguration and ErrEmptyInput. Package-level sentinels in filter,
// cover, cluster, pointcloud and mapper wrap one of these roots, so callers can
// branch either on the precise sentinel or on the class:
//
//	if errors.Is(err, errors.ErrInvalidConfiguration) {
//	    // bad interval count, overlap, projection index, eps, ...
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Root error classes.
var (
	// ErrInvalidConfiguration is raised synchronously when a filter, cover,
	// clusterer or pipeline parameter is out of range.
	ErrInvalidConfiguration = New("invalid configuration")

	// ErrEmptyInput indicates that there is nothing to build a graph from.
	ErrEmptyInput = New("empty input")
)

// IsInvalidConfiguration reports whether err is or wraps ErrInvalidConfiguration.
func IsInvalidConfiguration(err error) bool {
	return err != nil && Is(err, ErrInvalidConfiguration)
}

// IsEmptyInput reports whether err is or wraps ErrEmptyInput.
func IsEmptyInput(err error) bool {
	return err != nil && Is(err, ErrEmptyInput)
}

// Invalid builds a package sentinel of the ErrInvalidConfiguration class.
// msg should carry the package prefix, e.g. "cover: overlap must be in [0,1)".
func Invalid(msg string) error {
	return Wrap(ErrInvalidConfiguration, msg)
}
