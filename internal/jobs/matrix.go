package jobs

import (
	"fmt"

	"DataSci/internal/mapreduce"
	"DataSci/internal/types"
)

// IndexedValue is a matrix entry tagged with its position in the dot product.
type IndexedValue struct {
	Index int
	Value float64
}

// Product is one nonzero cell of C = A x B.
type Product = mapreduce.KeyValue[types.Cell, float64]

// MatrixMultiplyMapper sends every entry of A or B to the m product cells it
// contributes to. m is the common dimension.
func MatrixMultiplyMapper(m int) mapreduce.Mapper[types.MatrixEntry, types.Cell, IndexedValue] {
	return func(e types.MatrixEntry) ([]mapreduce.KeyValue[types.Cell, IndexedValue], error) {
		out := make([]mapreduce.KeyValue[types.Cell, IndexedValue], 0, m)
		switch e.Matrix {
		case "A":
			for k := 0; k < m; k++ {
				out = append(out, mapreduce.KeyValue[types.Cell, IndexedValue]{
					Key:   types.Cell{Row: e.I, Col: k},
					Value: IndexedValue{Index: e.J, Value: e.Value},
				})
			}
		case "B":
			for k := 0; k < m; k++ {
				out = append(out, mapreduce.KeyValue[types.Cell, IndexedValue]{
					Key:   types.Cell{Row: k, Col: e.J},
					Value: IndexedValue{Index: e.I, Value: e.Value},
				})
			}
		default:
			return nil, fmt.Errorf("entry (%d,%d) belongs to unknown matrix %q", e.I, e.J, e.Matrix)
		}
		return out, nil
	}
}

// MatrixMultiplyReducer sums the products of positions that received a value
// from both matrices. Zero sums are dropped to keep the result sparse.
func MatrixMultiplyReducer(cell types.Cell, values []IndexedValue) ([]Product, error) {
	var order []int
	byIndex := make(map[int][]float64)
	for _, v := range values {
		if _, ok := byIndex[v.Index]; !ok {
			order = append(order, v.Index)
		}
		byIndex[v.Index] = append(byIndex[v.Index], v.Value)
	}

	sum := 0.0
	for _, idx := range order {
		if vs := byIndex[idx]; len(vs) == 2 {
			sum += vs[0] * vs[1]
		}
	}
	if sum == 0 {
		return nil, nil
	}
	return []Product{{Key: cell, Value: sum}}, nil
}

// MatrixMultiply computes the nonzero cells of A x B from sparse entries.
func MatrixMultiply(m int, entries []types.MatrixEntry) ([]Product, error) {
	return mapreduce.MapReduce(entries, MatrixMultiplyMapper(m), MatrixMultiplyReducer)
}
