// Package traceio reads delimited-text intensity data and writes peak tables.
package traceio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
)

// Errors returned by Load.
var (
	ErrParse      = errors.New("traceio: could not parse input")
	ErrDimensions = errors.New("traceio: invalid data dimensions")
)

var separators = strings.NewReplacer(";", ",", "\t", ",")

// Load reads a rectangular table of numbers. Values may be separated by
// commas, semicolons or tabs, and lines starting with '#' are skipped.
// Empty cells read as NaN.
func Load(r io.Reader) (*mat.Dense, error) {
	var cleaned strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		cleaned.WriteString(separators.Replace(sc.Text()))
		cleaned.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	cr := csv.NewReader(strings.NewReader(cleaned.String()))
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrDimensions)
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		for j, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				data = append(data, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrParse, i+1, j+1, field)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// Column returns a copy of column j of m.
func Column(m mat.Matrix, j int) ([]float64, error) {
	rows, cols := m.Dims()
	if j < 0 || j >= cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrDimensions, j, cols)
	}
	return mat.Col(make([]float64, rows), j, m), nil
}

// Flatten returns the rows of m joined end to end.
func Flatten(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, mat.Row(nil, i, m)...)
	}
	return out
}

var peakHeader = []string{"top", "left", "right", "base", "width", "height", "area", "baseline"}

// WritePeaks writes found as comma-separated values with a header line.
func WritePeaks(w io.Writer, found []peaks.Peak) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(peakHeader); err != nil {
		return err
	}
	for _, p := range found {
		rec := []string{
			strconv.Itoa(p.Top),
			strconv.Itoa(p.Left),
			strconv.Itoa(p.Right),
			strconv.Itoa(p.Base),
			strconv.Itoa(p.Width),
			strconv.FormatFloat(p.Height, 'g', -1, 64),
			strconv.FormatFloat(p.Area, 'g', -1, 64),
			strconv.FormatFloat(p.Baseline, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
