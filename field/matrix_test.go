package field

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRand is a small deterministic generator for matrix contents.
type testRand struct{ state uint64 }

func (r *testRand) nibble() byte {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return byte(r.state>>60) & 0xf
}

func (r *testRand) matrix(rows, cols int) [][]byte {
	A := make([][]byte, rows)
	for i := range A {
		A[i] = make([]byte, cols)
		for j := range A[i] {
			A[i][j] = r.nibble()
		}
	}
	return A
}

func TestMatrixMultiplication(t *testing.T) {
	A := [][]byte{
		{1, 2},
		{3, 4},
	}
	B := [][]byte{
		{5, 6},
		{7, 8},
	}
	expected := [][]byte{
		{11, 5},
		{0, 12},
	}

	result := MultiplyMatrices(A, B)

	if !reflect.DeepEqual(expected, result) {
		t.Error("Multiplication failed", expected, result)
	}
}

func TestMatrixMultiplicationSimple(t *testing.T) {
	A := [][]byte{
		{2},
		{8},
	}
	B := [][]byte{
		{3, 1},
	}
	expected := [][]byte{
		{6, 2},
		{11, 8},
	}

	result := MultiplyMatrices(A, B)

	if !reflect.DeepEqual(expected, result) {
		t.Error("Multiplication failed", expected, result)
	}
}

func TestMatrixMultiplicationLarger(t *testing.T) {
	A := [][]byte{
		{2, 2, 2, 2, 2, 2, 2, 2},
		{4, 4, 5, 5, 5, 6, 6, 8},
	}
	B := [][]byte{
		{0, 1},
		{2, 3},
		{4, 5},
		{6, 7},
		{8, 9},
		{10, 11},
		{12, 13},
		{14, 15},
	}
	expected := [][]byte{
		{0, 0},
		{2, 15},
	}

	result := MultiplyMatrices(A, B)

	if !reflect.DeepEqual(expected, result) {
		t.Error("Multiplication failed", expected, result)
	}
}

func TestMatrixMultiplicationAssociativity(t *testing.T) {
	r := &testRand{state: 42}

	for trial := 0; trial < 10; trial++ {
		A := r.matrix(3, 4)
		B := r.matrix(4, 5)
		C := r.matrix(5, 2)

		left := MultiplyMatrices(MultiplyMatrices(A, B), C)
		right := MultiplyMatrices(A, MultiplyMatrices(B, C))

		require.Equal(t, left, right)
	}
}

func TestMatrixAddition(t *testing.T) {
	A := [][]byte{
		{0, 1, 5},
		{3, 4, 6},
	}
	B := [][]byte{
		{3, 4, 5},
		{0, 1, 7},
	}
	expected := [][]byte{
		{3, 5, 0},
		{3, 5, 1},
	}

	result := AddMatrices(A, B)

	if !reflect.DeepEqual(expected, result) {
		t.Error("Addition failed", expected, result)
	}
}

func TestMatrixAddEqualsSub(t *testing.T) {
	r := &testRand{state: 7}

	for trial := 0; trial < 10; trial++ {
		A := r.matrix(4, 6)
		B := r.matrix(4, 6)

		require.Equal(t, AddMatrices(A, B), SubMatrices(A, B))
	}
}

func TestNegMatrixIsIdentity(t *testing.T) {
	r := &testRand{state: 13}
	A := r.matrix(5, 3)

	require.Equal(t, A, NegMatrix(A))
}

func TestVectorMatrixMul(t *testing.T) {
	vec := []byte{0, 2}
	M := [][]byte{
		{0, 1},
		{2, 3},
	}

	result := VectorMatrixMul(vec, M)

	require.Equal(t, []byte{4, 6}, result)
}

func TestVectorMatrixMulMatchesRowMatrixProduct(t *testing.T) {
	r := &testRand{state: 99}
	M := r.matrix(6, 4)
	vec := r.matrix(1, 6)[0]

	asMatrix := MultiplyMatrices([][]byte{vec}, M)

	require.Equal(t, asMatrix[0], VectorMatrixMul(vec, M))
}

func TestMatrixVectorMul(t *testing.T) {
	M := [][]byte{
		{0, 1},
		{2, 3},
	}
	vec := []byte{0, 2}

	result := MatrixVectorMul(M, vec)

	require.Equal(t, []byte{2, 6}, result)
}

func TestMatrixVectorMulMatchesColumnMatrixProduct(t *testing.T) {
	r := &testRand{state: 31}
	M := r.matrix(5, 7)
	vec := r.matrix(1, 7)[0]

	column := make([][]byte, len(vec))
	for i := range column {
		column[i] = []byte{vec[i]}
	}
	asMatrix := MultiplyMatrices(M, column)

	got := MatrixVectorMul(M, vec)
	for i := range got {
		require.Equal(t, asMatrix[i][0], got[i])
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	A := [][]byte{{1, 2}, {3, 4}}
	B := [][]byte{{1, 2, 3}}

	require.Panics(t, func() { AddMatrices(A, B) })
	require.Panics(t, func() { SubMatrices(A, B) })
	require.Panics(t, func() { MultiplyMatrices(A, B[:1]) })
	require.Panics(t, func() { VectorMatrixMul([]byte{1, 2, 3}, A) })
	require.Panics(t, func() { MatrixVectorMul(A, []byte{1, 2, 3}) })
	require.Panics(t, func() { AddVec([]byte{1}, []byte{1, 2}) })
	require.Panics(t, func() { SubVec([]byte{1}, []byte{1, 2}) })
	require.Panics(t, func() { DotVec([]byte{1}, []byte{1, 2}) })
	require.Panics(t, func() { AppendVecToMatrix(A, []byte{1, 2, 3}) })
}

func TestTransposeMatrixForSquareMatrix(t *testing.T) {
	A := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	expected := [][]byte{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}

	result := TransposeMatrix(A)

	if !reflect.DeepEqual(result, expected) {
		t.Error("Transpose failed")
	}
}

func TestTransposeMatrixForNonSquareMatrix(t *testing.T) {
	A := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
	}
	expected := [][]byte{
		{1, 4},
		{2, 5},
		{3, 6},
	}

	result := TransposeMatrix(A)

	if !reflect.DeepEqual(result, expected) {
		t.Error("Transpose failed")
	}
}

func TestAppendAndExtractVec(t *testing.T) {
	r := &testRand{state: 64}
	A := r.matrix(4, 3)
	b := r.matrix(1, 4)[0]

	C := AppendVecToMatrix(A, b)
	gotA, gotB := ExtractVecFromMatrix(C)

	require.Equal(t, A, gotA)
	require.Equal(t, b, gotB)
}
