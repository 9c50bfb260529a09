// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSetRow = "SetRow"
	ctxSetCol = "SetCol"
	ctxSwap   = "Swap"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Go has no uninitialized storage, so the "uninitialized" constructor of the
// engine is this zero-filled one.
//
// Errors: ErrInvalidDimensions if rows<=0 or cols<=0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewScalar creates an r×c matrix with s on the main diagonal and zeros elsewhere.
// NewScalar(n, n, 1) is the identity.
func NewScalar(rows, cols int, s float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.LoadIdentity(s)

	return m, nil
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) { return NewScalar(n, n, 1) }

// NewDenseFrom builds an r×c matrix from a flat row-major slice.
// The slice is copied; len(data) must equal rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a matrix whose i-th row is rows[i]. All rows must share a length.
func NewFromRows(rows ...[]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err = m.SetRow(i, row); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewFromCols builds a matrix whose j-th column is cols[j]. All columns must share a length.
func NewFromCols(cols ...[]float64) (*Dense, error) {
	if len(cols) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(cols[0]), len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if err = m.SetCol(j, col); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// RawData exposes the row-major backing slice (no copy).
// Mutations are visible in m.
func (m *Dense) RawData() []float64 { return m.data }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with v. A shorter v only overwrites its prefix,
// a longer one is rejected.
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) > m.c {
		return denseErrorf(ctxSetRow, i, len(v), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:], v)

	return nil
}

// SetCol overwrites column j with v; the same prefix rule as SetRow applies.
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) > m.r {
		return denseErrorf(ctxSetCol, len(v), j, ErrDimensionMismatch)
	}
	for i, x := range v {
		m.data[i*m.c+j] = x
	}

	return nil
}

// SwapRows exchanges rows a and b.
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwap, a, b, ErrOutOfRange)
	}
	m.swapRows(a, b)

	return nil
}

// SwapCols exchanges columns a and b.
func (m *Dense) SwapCols(a, b int) error {
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return denseErrorf(ctxSwap, a, b, ErrOutOfRange)
	}
	m.swapCols(a, b)

	return nil
}

// swapRows is the unchecked kernel used by the decompositions.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}

func (m *Dense) swapCols(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}
}

// LoadZero sets every element to 0.
func (m *Dense) LoadZero() {
	for k := range m.data {
		m.data[k] = 0
	}
}

// LoadIdentity writes s on the main diagonal and 0 elsewhere.
func (m *Dense) LoadIdentity(s float64) {
	m.LoadZero()
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		m.data[i*m.c+i] = s
	}
}

// Equal reports whether m and o have the same shape and bitwise-equal elements.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if v != o.data[k] {
			return false
		}
	}

	return true
}

// EqualApprox reports element-wise |m-o| <= tol for identical shapes.
func (m *Dense) EqualApprox(o *Dense, tol float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if math.Abs(v-o.data[k]) > tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// asDense returns m's concrete *Dense or a materialized copy of any other Matrix.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
