package export

import (
	"encoding/json"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmapper/bfs"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/mapper"
	"github.com/katalvlaran/lvmapper/matrix"
	"github.com/katalvlaran/lvmapper/pointcloud"
)

// Supported encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrNilResult indicates FromResult was called without a result or graph.
	ErrNilResult = errors.New("export: nil result")

	// ErrCloudMismatch indicates the cloud does not match the result's points.
	ErrCloudMismatch = errors.New("export: cloud does not match result")

	// ErrUnsupportedFormat indicates an encoding other than json or yaml.
	ErrUnsupportedFormat = errors.New("export: unsupported format")
)

type options struct {
	runID   uuid.UUID
	now     func() time.Time
	config  map[string]string
	members bool
}

// Option customizes FromResult.
type Option func(*options)

// WithRunID fixes the run identifier; by default a random UUID is used.
func WithRunID(id uuid.UUID) Option {
	return func(o *options) { o.runID = id }
}

// WithClock overrides time.Now for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithConfig attaches a flat configuration summary, e.g. mapper.Describe().
func WithConfig(cfg map[string]string) Option {
	return func(o *options) { o.config = cfg }
}

// WithMembers toggles listing point indices per node (default on).
func WithMembers(on bool) Option {
	return func(o *options) { o.members = on }
}

// FromResult builds a Document from res. cloud must be the cloud res was
// built from; it supplies coordinates for centroids and labels.
// Complexity: O(Σ|members|·D + V + E).
func FromResult(res *mapper.Result, cloud *pointcloud.Cloud, opts ...Option) (*Document, error) {
	if res == nil || res.Graph == nil {
		return nil, ErrNilResult
	}
	if cloud == nil || cloud.Len() != res.Stats.Points {
		return nil, errors.Wrapf(ErrCloudMismatch, "result has %d points", res.Stats.Points)
	}
	o := options{now: time.Now, members: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}

	components, nComp, err := bfs.ComponentIndex(res.Graph)
	if err != nil {
		return nil, errors.Wrap(err, "export: components")
	}

	nodes := res.Graph.Nodes()
	doc := &Document{
		Nodes: make([]Node, 0, len(nodes)),
		Links: make([]Link, 0, res.Graph.EdgeCount()),
	}
	covered := make(map[int]struct{})
	for _, n := range nodes {
		sub, err := cloud.Subset(n.Members)
		if err != nil {
			return nil, errors.Wrapf(ErrCloudMismatch, "node %s: %v", n.ID, err)
		}
		m, err := matrix.FromRows(sub)
		if err != nil {
			return nil, errors.Wrapf(err, "export: centroid of %s", n.ID)
		}
		centroid, err := matrix.ColumnMeans(m)
		if err != nil {
			return nil, errors.Wrapf(err, "export: centroid of %s", n.ID)
		}
		out := Node{
			ID:        n.ID,
			Region:    n.Region,
			Cluster:   n.Cluster,
			Size:      n.Size(),
			Centroid:  centroid,
			Component: components[n.ID],
		}
		if o.members {
			out.Members = n.Members
		}
		if cloud.HasLabels() {
			out.Labels = make(map[string]int)
			for _, i := range n.Members {
				out.Labels[cloud.Label(i)]++
			}
			out.Label = majority(out.Labels)
		}
		for _, i := range n.Members {
			covered[i] = struct{}{}
		}
		doc.Nodes = append(doc.Nodes, out)
	}
	for _, e := range res.Graph.Edges() {
		doc.Links = append(doc.Links, Link{ID: e.ID, Source: e.From, Target: e.To, Weight: e.Weight})
	}

	doc.Meta = Meta{
		RunID:       o.runID.String(),
		GeneratedAt: o.now().UTC(),
		Elapsed:     res.Elapsed.String(),
		Stats: Stats{
			Nodes:         len(doc.Nodes),
			Edges:         len(doc.Links),
			Components:    nComp,
			Points:        cloud.Len(),
			CoveredPoints: len(covered),
		},
		Pipeline: res.Stats,
		Config:   o.config,
	}

	return doc, nil
}

// majority returns the most frequent label; ties go to the smallest label.
func majority(hist map[string]int) string {
	labels := make([]string, 0, len(hist))
	for l := range hist {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	best, count := "", 0
	for _, l := range labels {
		if hist[l] > count {
			best, count = l, hist[l]
		}
	}

	return best
}

// WriteJSON writes d as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(d), "export: json")
}

// WriteYAML writes d as YAML.
func (d *Document) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "export: yaml")
	}

	return errors.Wrap(enc.Close(), "export: yaml")
}

// Encode writes d in the named format ("json" or "yaml", case-insensitive).
func (d *Document) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return d.WriteJSON(w)
	case FormatYAML, "yml":
		return d.WriteYAML(w)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}
