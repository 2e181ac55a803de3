package field

import "fmt"

// Matrices are slices of equal-length rows of field elements. Dimensions
// are checked on every binary operation; a mismatch is a programming
// error at the call site and panics rather than returning a corrupt
// result. All operations return freshly allocated matrices.

// AddMatrices adds two matrices element-wise.
func AddMatrices(A, B [][]byte) [][]byte {
	rowsA, colsA := len(A), len(A[0])
	rowsB, colsB := len(B), len(B[0])

	if rowsA != rowsB || colsA != colsB {
		panic(fmt.Sprintf("Cannot add matrices (%d x %d), (%d x %d)", rowsA, colsA, rowsB, colsB))
	}

	C := make([][]byte, rowsA)
	for i := range C {
		C[i] = make([]byte, colsA)
		for j := range C[i] {
			C[i][j] = Add(A[i][j], B[i][j])
		}
	}

	return C
}

// SubMatrices subtracts B from A element-wise.
func SubMatrices(A, B [][]byte) [][]byte {
	rowsA, colsA := len(A), len(A[0])
	rowsB, colsB := len(B), len(B[0])

	if rowsA != rowsB || colsA != colsB {
		panic(fmt.Sprintf("Cannot sub matrices (%d x %d), (%d x %d)", rowsA, colsA, rowsB, colsB))
	}

	C := make([][]byte, rowsA)
	for i := range C {
		C[i] = make([]byte, colsA)
		for j := range C[i] {
			C[i][j] = Sub(A[i][j], B[i][j])
		}
	}

	return C
}

// NegMatrix negates a matrix element-wise. Over GF(16) this is the
// identity; the operation exists to keep call sites representation
// agnostic.
func NegMatrix(A [][]byte) [][]byte {
	C := make([][]byte, len(A))
	for i := range C {
		C[i] = make([]byte, len(A[i]))
		for j := range C[i] {
			C[i][j] = Neg(A[i][j])
		}
	}

	return C
}

// MultiplyMatrices multiplies two matrices. Also covers matrix-by-column-
// vector and row-vector-by-matrix products when the vector is given as a
// one-column or one-row matrix.
func MultiplyMatrices(A, B [][]byte) [][]byte {
	rowsA, colsA := len(A), len(A[0])
	rowsB, colsB := len(B), len(B[0])

	if colsA != rowsB {
		panic(fmt.Sprintf("Cannot multiply matrices colsA: '%d', rowsB: '%d'", colsA, rowsB))
	}

	C := make([][]byte, rowsA)
	for i := range C {
		C[i] = make([]byte, colsB)
		for j := 0; j < colsB; j++ {
			for k := 0; k < colsA; k++ {
				C[i][j] = Add(C[i][j], Mul(A[i][k], B[k][j]))
			}
		}
	}

	return C
}

// VectorMatrixMul multiplies a row vector by a matrix. The result has one
// entry per matrix column; each output column is fully accumulated before
// moving to the next.
func VectorMatrixMul(vec []byte, M [][]byte) []byte {
	rows, cols := len(M), len(M[0])

	if len(vec) != rows {
		panic(fmt.Sprintf("Cannot multiply vector of length %d with matrix of %d rows", len(vec), rows))
	}

	C := make([]byte, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			C[j] = Add(C[j], Mul(vec[i], M[i][j]))
		}
	}

	return C
}

// MatrixVectorMul multiplies a matrix by a column vector. The result has
// one entry per matrix row.
func MatrixVectorMul(M [][]byte, vec []byte) []byte {
	rows, cols := len(M), len(M[0])

	if cols != len(vec) {
		panic(fmt.Sprintf("Cannot multiply matrix of %d columns with vector of length %d", cols, len(vec)))
	}

	C := make([]byte, rows)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			C[i] = Add(C[i], Mul(M[i][k], vec[k]))
		}
	}

	return C
}

// TransposeMatrix transposes the matrix.
func TransposeMatrix(A [][]byte) [][]byte {
	rows, cols := len(A), len(A[0])
	T := make([][]byte, cols)
	for i := range T {
		T[i] = make([]byte, rows)
		for j := range T[i] {
			T[i][j] = A[j][i]
		}
	}
	return T
}

// AppendVecToMatrix appends a vector as the last column of a matrix.
func AppendVecToMatrix(A [][]byte, b []byte) [][]byte {
	rows, cols := len(A), len(A[0])
	if rows != len(b) {
		panic(fmt.Sprintf("Cannot append vector of length %d to matrix with %d rows", len(b), rows))
	}

	C := make([][]byte, rows)
	for i := 0; i < rows; i++ {
		C[i] = make([]byte, cols+1)
		copy(C[i], A[i])
		C[i][cols] = b[i]
	}

	return C
}

// ExtractVecFromMatrix splits off the last column of a matrix, returning
// the remaining matrix and the column as a vector.
func ExtractVecFromMatrix(A [][]byte) ([][]byte, []byte) {
	rows, cols := len(A), len(A[0])
	if cols < 1 {
		panic("Cannot extract vector from matrix")
	}

	B := make([][]byte, rows)
	y := make([]byte, rows)

	for i, row := range A {
		B[i] = make([]byte, cols-1)
		copy(B[i], row[:cols-1])
		y[i] = row[cols-1]
	}

	return B, y
}
