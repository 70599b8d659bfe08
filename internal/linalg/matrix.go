package linalg

// Shape returns the number of rows and the number of columns of the first row.
func Shape(m Matrix) (rows, cols int) {
	rows = len(m)
	if rows > 0 {
		cols = len(m[0])
	}
	return rows, cols
}

func Row(m Matrix, i int) Vector {
	return append(Vector(nil), m[i]...)
}

func Column(m Matrix, j int) Vector {
	out := make(Vector, len(m))
	for i, row := range m {
		out[i] = row[j]
	}
	return out
}

// MakeMatrix builds a rows x cols matrix whose (i, j) entry is fn(i, j).
func MakeMatrix(rows, cols int, fn func(i, j int) float64) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make(Vector, cols)
		for j := range m[i] {
			m[i][j] = fn(i, j)
		}
	}
	return m
}

// Identity is the n x n identity matrix.
func Identity(n int) Matrix {
	return MakeMatrix(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})
}
