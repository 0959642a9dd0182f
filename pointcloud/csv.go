package pointcloud

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmapper/errors"
)

// ErrParse indicates a CSV cell that should be numeric could not be parsed.
var ErrParse = errors.New("pointcloud: malformed CSV")

// csvOptions configures ReadCSV.
type csvOptions struct {
	labelColumn int  // -1 = no label column
	header      int  // -1 auto, 0 no header, 1 header
	comma       rune // field delimiter
}

// CSVOption tunes CSV decoding.
type CSVOption func(*csvOptions)

// WithLabelColumn treats column k as the per-point label; it is excluded
// from the coordinates. Negative k disables labels.
func WithLabelColumn(k int) CSVOption {
	return func(o *csvOptions) { o.labelColumn = k }
}

// WithHeader forces header handling instead of auto-detection.
func WithHeader(present bool) CSVOption {
	return func(o *csvOptions) {
		if present {
			o.header = 1
		} else {
			o.header = 0
		}
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) { o.comma = r }
}

// ReadCSV decodes a point cloud: one point per record, numeric columns are
// coordinates. A header row is auto-detected when its coordinate cells are
// not all numeric. The returned cloud is validated.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Cloud, error) {
	o := csvOptions{labelColumn: -1, header: -1, comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 0 // first record fixes the width

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	if o.labelColumn >= len(records[0]) {
		return nil, errors.Wrapf(ErrParse, "label column %d out of range for %d columns", o.labelColumn, len(records[0]))
	}

	start := 0
	switch o.header {
	case 1:
		start = 1
	case -1:
		if !numericRecord(records[0], o.labelColumn) {
			start = 1
		}
	}

	var (
		points = make([][]float64, 0, len(records)-start)
		labels []string
	)
	if o.labelColumn >= 0 {
		labels = make([]string, 0, len(records)-start)
	}
	for line := start; line < len(records); line++ {
		rec := records[line]
		p := make([]float64, 0, len(rec))
		for col, cell := range rec {
			if col == o.labelColumn {
				labels = append(labels, strings.TrimSpace(cell))
				continue
			}
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, errors.Wrapf(ErrParse, "line %d column %d: %q", line+1, col+1, cell)
			}
			p = append(p, v)
		}
		points = append(points, p)
	}

	return New(points, labels)
}

// WriteCSV encodes the cloud with a generated header (x0..xn[,label]).
func WriteCSV(w io.Writer, c *Cloud) error {
	if err := c.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	dim := c.Dim()
	header := make([]string, 0, dim+1)
	for j := 0; j < dim; j++ {
		header = append(header, "x"+strconv.Itoa(j))
	}
	if c.HasLabels() {
		header = append(header, "label")
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "pointcloud: write header")
	}
	row := make([]string, len(header))
	for i, p := range c.Points {
		for j, v := range p {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if c.HasLabels() {
			row[dim] = c.Labels[i]
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "pointcloud: write point %d", i)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "pointcloud: flush")
}

// numericRecord reports whether every non-label cell parses as a float.
func numericRecord(rec []string, labelColumn int) bool {
	for col, cell := range rec {
		if col == labelColumn {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return false
		}
	}

	return true
}
