// Package sae holds the Surface of Active Events: a per-pixel grid of the
// most recent event timestamp, one value per pixel.
package sae

import (
	"fmt"

	"github.com/okian/arcstar/internal/domain/model"
)

// Surface is a read-only view of a timestamp grid.
type Surface interface {
	// At returns the timestamp recorded at (row, col).
	At(row, col int) model.Time
	// Shape returns the grid extent as (rows, cols).
	Shape() (rows, cols int)
}

// Matrix is a dense, row-major timestamp grid.
type Matrix struct {
	rows, cols int
	data       []model.Time
}

var _ Surface = (*Matrix)(nil)

// NewMatrix allocates a zeroed rows x cols grid.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("sae: negative matrix shape %dx%d", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]model.Time, rows*cols),
	}
}

// FromRows builds a Matrix from a slice of equally sized rows.
func FromRows(rows [][]model.Time) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), m.cols, ErrRaggedRows)
		}
		copy(m.data[r*m.cols:], row)
	}
	return m, nil
}

// At returns the timestamp at (row, col). It panics outside the extent.
func (m *Matrix) At(row, col int) model.Time {
	return m.data[m.index(row, col)]
}

// Set stores ts at (row, col). It panics outside the extent.
func (m *Matrix) Set(row, col int, ts model.Time) {
	m.data[m.index(row, col)] = ts
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Contains reports whether (row, col) lies inside the grid.
func (m *Matrix) Contains(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Fill sets every pixel to ts.
func (m *Matrix) Fill(ts model.Time) {
	for i := range m.data {
		m.data[i] = ts
	}
}

func (m *Matrix) index(row, col int) int {
	if !m.Contains(row, col) {
		panic(fmt.Sprintf("sae: index (%d, %d) outside %dx%d surface", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}
