// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmapper/errors"
)

// Filter maps every point to a filter value of fixed length.
type Filter interface {
	// Apply returns one output vector per input point, in input order.
	// The input is never modified.
	Apply(points [][]float64) ([][]float64, error)

	// Dim reports the output length for inputs of dimension inputDim,
	// or an ErrInvalidConfiguration-class error if the lens cannot serve it.
	Dim(inputDim int) (int, error)
}

// Filter kinds accepted by ByName.
const (
	KindIdentity     = "identity"
	KindProjection   = "projection"
	KindSum          = "sum"
	KindMean         = "mean"
	KindMax          = "max"
	KindMin          = "min"
	KindL2Norm       = "l2norm"
	KindCentroid     = "centroid"
	KindEccentricity = "eccentricity"
	KindPCA          = "pca"
)

// Params carries the kind-specific settings ByName may need.
type Params struct {
	Indices    []int   // projection
	Components int     // pca
	Power      float64 // eccentricity
}

// ByName resolves a lens by kind (case-insensitive). "" means identity.
func ByName(kind string, p Params) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindIdentity:
		return Identity(), nil
	case KindProjection:
		if len(p.Indices) == 0 {
			return nil, ErrNoIndices
		}
		return Projection(p.Indices...), nil
	case KindSum:
		return Sum(), nil
	case KindMean:
		return Mean(), nil
	case KindMax:
		return Max(), nil
	case KindMin:
		return Min(), nil
	case KindL2Norm:
		return L2Norm(), nil
	case KindCentroid:
		return DistanceToCentroid(), nil
	case KindEccentricity:
		power := p.Power
		if power == 0 {
			power = 1
		}
		if power < 1 {
			return nil, errors.Wrapf(ErrPower, "p=%g", p.Power)
		}
		return Eccentricity(power), nil
	case KindPCA:
		if p.Components < 1 {
			return nil, errors.Wrapf(ErrComponents, "k=%d", p.Components)
		}
		return PCA(p.Components), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFilter, "%q", kind)
	}
}

// inputDim validates that points is a non-empty rectangular set and returns
// its dimension.
func inputDim(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyInput
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return 0, errors.Wrapf(ErrRagged, "point %d has %d coordinates, want %d", i, len(p), d)
		}
	}

	return d, nil
}

// identity copies coordinates unchanged.
type identity struct{}

// Identity returns the dimension-preserving lens.
func Identity() Filter { return identity{} }

func (identity) Dim(inputDim int) (int, error) { return inputDim, nil }

func (identity) Apply(points [][]float64) ([][]float64, error) {
	if _, err := inputDim(points); err != nil {
		return nil, err
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = append([]float64(nil), p...)
	}

	return out, nil
}

func (identity) String() string { return KindIdentity }

// projection selects coordinate indices, in the given order.
type projection struct {
	indices []int
}

// Projection returns a lens selecting the given coordinates. A single index
// yields a scalar lens. Indices are validated against the input dimension
// when the lens is applied.
func Projection(indices ...int) Filter {
	return projection{indices: append([]int(nil), indices...)}
}

func (f projection) Dim(inputDim int) (int, error) {
	if len(f.indices) == 0 {
		return 0, ErrNoIndices
	}
	for _, idx := range f.indices {
		if idx < 0 || idx >= inputDim {
			return 0, errors.Wrapf(ErrProjectionIndex, "index %d, input dimension %d", idx, inputDim)
		}
	}

	return len(f.indices), nil
}

func (f projection) Apply(points [][]float64) ([][]float64, error) {
	d, err := inputDim(points)
	if err != nil {
		return nil, err
	}
	m, err := f.Dim(d)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		v := make([]float64, m)
		for k, idx := range f.indices {
			v[k] = p[idx]
		}
		out[i] = v
	}

	return out, nil
}

func (f projection) String() string { return fmt.Sprintf("%s%v", KindProjection, f.indices) }

// funcLens wraps a user function.
type funcLens struct {
	dim int
	fn  func([]float64) []float64
}

// Func returns a lens backed by fn, which must return dim values for every point.
// fn receives the point's own coordinate slice and must not modify it.
func Func(dim int, fn func([]float64) []float64) Filter {
	return funcLens{dim: dim, fn: fn}
}

func (f funcLens) Dim(int) (int, error) {
	if f.fn == nil {
		return 0, ErrNilFunc
	}
	if f.dim < 1 {
		return 0, errors.Wrapf(ErrOutputDim, "declared dimension %d", f.dim)
	}

	return f.dim, nil
}

func (f funcLens) Apply(points [][]float64) ([][]float64, error) {
	d, err := inputDim(points)
	if err != nil {
		return nil, err
	}
	if _, err = f.Dim(d); err != nil {
		return nil, err
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		v := f.fn(p)
		if len(v) != f.dim {
			return nil, errors.Wrapf(ErrOutputDim, "point %d: got %d values, want %d", i, len(v), f.dim)
		}
		out[i] = append([]float64(nil), v...)
	}

	return out, nil
}

func (f funcLens) String() string { return fmt.Sprintf("func(%d)", f.dim) }
