package field

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubVectorWorksAsExpectedInTheField(t *testing.T) {
	A := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	B := []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	result := AddVec(A, AddVec(B, A)) // A + B + A = B

	if !bytes.Equal(B, result) {
		t.Error("Addition and subtraction failed")
	}
}

func TestSubVecEqualsAddVec(t *testing.T) {
	A := []byte{0, 3, 7, 9, 12, 15}
	B := []byte{5, 5, 2, 8, 1, 14}

	require.Equal(t, AddVec(A, B), SubVec(A, B))
}

func TestScaleVec(t *testing.T) {
	A := []byte{0, 1, 2, 7, 9, 15}

	for b := byte(0); b < 16; b++ {
		got := ScaleVec(b, A)
		for i, a := range A {
			require.Equal(t, Mul(b, a), got[i])
		}
	}
}

func TestDotVecMatchesVectorMatrixMul(t *testing.T) {
	A := []byte{3, 1, 4, 1, 5}
	B := []byte{9, 2, 6, 5, 3}

	column := make([][]byte, len(B))
	for i := range column {
		column[i] = []byte{B[i]}
	}

	require.Equal(t, VectorMatrixMul(A, column)[0], DotVec(A, B))
}
