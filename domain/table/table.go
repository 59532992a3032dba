// Package table provides the dense n-dimensional contingency table that all
// statistical computation in this module operates on. A Table is a value
// object: it is built once from raw cell data and never shared or mutated
// across calls.
package table

import (
	"fmt"
)

// Kind describes the element type a table was built from. Cells are always
// stored as float64 internally; the kind records whether the source data were
// integral counts, which some statistics require.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// Table is a dense n-dimensional array of cell values in row-major order.
// Each axis corresponds to one categorical variable and each axis length to
// that variable's number of categories.
type Table struct {
	shape   []int
	strides []int
	data    []float64
	kind    Kind
}

// New creates a float-kind table from a shape and row-major cell data.
// Axis lengths must be nonnegative and the data length must match the shape's
// element count. Zero-length axes are permitted so that empty tables can be
// represented; downstream statistics reject them explicitly.
func New(shape []int, data []float64) (*Table, error) {
	return newTable(shape, data, KindFloat)
}

// NewInt creates an integer-kind table from a shape and row-major counts.
func NewInt(shape []int, counts []int) (*Table, error) {
	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}
	return newTable(shape, data, KindInt)
}

// Zeros creates a float-kind table of the given shape with every cell zero.
func Zeros(shape []int) *Table {
	size := 1
	for _, n := range shape {
		size *= n
	}
	t, _ := newTable(shape, make([]float64, size), KindFloat)
	return t
}

func newTable(shape []int, data []float64, kind Kind) (*Table, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("table shape must have at least one axis")
	}
	size := 1
	for k, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("table axis %d has negative length %d", k, n)
		}
		size *= n
	}
	if len(data) != size {
		return nil, fmt.Errorf("table data has %d cells, shape %v requires %d", len(data), shape, size)
	}
	t := &Table{
		shape:   append([]int(nil), shape...),
		data:    data,
		kind:    kind,
		strides: rowMajorStrides(shape),
	}
	return t, nil
}

// rowMajorStrides computes the flat-index stride of each axis.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}
	return strides
}

// Kind returns the element kind the table was built from.
func (t *Table) Kind() Kind {
	return t.kind
}

// Rank returns the number of axes.
func (t *Table) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the axis lengths.
func (t *Table) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Dim returns the length of axis k.
func (t *Table) Dim(k int) int {
	return t.shape[k]
}

// Size returns the total number of cells.
func (t *Table) Size() int {
	return len(t.data)
}

// Values returns the underlying row-major cell slice. Callers treat it as
// read-only; mutation goes through Set.
func (t *Table) Values() []float64 {
	return t.data
}

// At returns the cell value at the given multi-index.
func (t *Table) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set assigns the cell value at the given multi-index.
func (t *Table) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Table) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("table index %v does not match rank %d", idx, len(t.shape)))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			panic(fmt.Sprintf("table index %v out of range for shape %v", idx, t.shape))
		}
		off += i * t.strides[k]
	}
	return off
}

// Sum returns the grand total of all cells.
func (t *Table) Sum() float64 {
	total := 0.0
	for _, v := range t.data {
		total += v
	}
	return total
}

// Clone returns a deep copy with the same kind.
func (t *Table) Clone() *Table {
	data := append([]float64(nil), t.data...)
	c, _ := newTable(t.shape, data, t.kind)
	return c
}

// AsFloat returns a float-kind view of the table, copying only when the kind
// needs to change.
func (t *Table) AsFloat() *Table {
	if t.kind == KindFloat {
		return t
	}
	c := t.Clone()
	c.kind = KindFloat
	return c
}

// Walk visits every cell in row-major order, passing the multi-index and the
// cell value. The index slice is reused between calls; callers must copy it
// to retain it.
func (t *Table) Walk(visit func(idx []int, v float64)) {
	if len(t.data) == 0 {
		return
	}
	idx := make([]int, len(t.shape))
	for flat := range t.data {
		visit(idx, t.data[flat])
		// increment the row-major multi-index
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < t.shape[k] {
				break
			}
			idx[k] = 0
		}
	}
}

// SameShape reports whether u has identical axis lengths.
func (t *Table) SameShape(u *Table) bool {
	if len(t.shape) != len(u.shape) {
		return false
	}
	for k := range t.shape {
		if t.shape[k] != u.shape[k] {
			return false
		}
	}
	return true
}

// String renders the shape and kind for diagnostics.
func (t *Table) String() string {
	return fmt.Sprintf("table%v[%s]", t.shape, t.kind)
}
