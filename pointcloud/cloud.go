// Package pointcloud holds the ordered point sequence the Mapper pipeline
// consumes. Point i is identified by its position i everywhere downstream:
// region memberships, cluster members and graph nodes all carry these indices.
//
// A Cloud is a plain value: Points[i] is a fixed-length coordinate vector and
// Labels[i] (optional) is an auxiliary tag the core never reads but passes
// through for consumer-side node coloring.
package pointcloud

import (
	"math"

	"github.com/katalvlaran/lvmapper/errors"
)

// Sentinel errors for point cloud validation.
var (
	// ErrEmptyInput indicates the cloud has no points.
	ErrEmptyInput = errors.Wrap(errors.ErrEmptyInput, "pointcloud: no points")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.Invalid("pointcloud: all points must have the same dimension")

	// ErrZeroDim indicates points with no coordinates.
	ErrZeroDim = errors.Invalid("pointcloud: points must have at least one coordinate")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.Invalid("pointcloud: coordinates must be finite")

	// ErrLabelCount indicates Labels is set but its length differs from Points.
	ErrLabelCount = errors.Invalid("pointcloud: label count does not match point count")

	// ErrIndexOutOfRange indicates a point index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pointcloud: point index out of range")
)

// Cloud is an ordered sequence of equal-length coordinate vectors plus
// optional per-point labels.
type Cloud struct {
	// Points holds one coordinate vector per point.
	Points [][]float64

	// Labels is either nil or has exactly len(Points) entries.
	Labels []string
}

// New validates points and labels and wraps them in a Cloud.
// The slices are referenced, not copied.
func New(points [][]float64, labels []string) (*Cloud, error) {
	c := &Cloud{Points: points, Labels: labels}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the cloud invariants: non-empty, rectangular, finite,
// and a label slice that is either absent or aligned with the points.
// Complexity: O(N·D).
func (c *Cloud) Validate() error {
	if c == nil || len(c.Points) == 0 {
		return ErrEmptyInput
	}
	dim := len(c.Points[0])
	if dim == 0 {
		return ErrZeroDim
	}
	for i, p := range c.Points {
		if len(p) != dim {
			return errors.Wrapf(ErrRagged, "point %d has %d coordinates, want %d", i, len(p), dim)
		}
		for j, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrNonFinite, "point %d coordinate %d", i, j)
			}
		}
	}
	if c.Labels != nil && len(c.Labels) != len(c.Points) {
		return errors.Wrapf(ErrLabelCount, "%d labels for %d points", len(c.Labels), len(c.Points))
	}

	return nil
}

// Len returns the number of points.
func (c *Cloud) Len() int { return len(c.Points) }

// Dim returns the coordinate dimension, or 0 for an empty cloud.
func (c *Cloud) Dim() int {
	if len(c.Points) == 0 {
		return 0
	}

	return len(c.Points[0])
}

// HasLabels reports whether per-point labels are attached.
func (c *Cloud) HasLabels() bool { return len(c.Labels) > 0 }

// Label returns the label of point i, or "" when labels are absent.
func (c *Cloud) Label(i int) string {
	if i < 0 || i >= len(c.Labels) {
		return ""
	}

	return c.Labels[i]
}

// Subset returns the coordinate rows for the given point indices, in order.
// Rows are shared with the cloud; callers must treat them as read-only.
// Complexity: O(len(indices)).
func (c *Cloud) Subset(indices []int) ([][]float64, error) {
	out := make([][]float64, len(indices))
	for k, idx := range indices {
		if idx < 0 || idx >= len(c.Points) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", idx, len(c.Points))
		}
		out[k] = c.Points[idx]
	}

	return out, nil
}
