package field

import "fmt"

// AddVec adds two vectors element-wise.
func AddVec(A, B []byte) []byte {
	if len(A) != len(B) {
		panic(fmt.Sprintf("Cannot add vectors of length %d and %d", len(A), len(B)))
	}

	C := make([]byte, len(A))
	for i := range C {
		C[i] = Add(A[i], B[i])
	}

	return C
}

// SubVec subtracts two vectors element-wise.
func SubVec(A, B []byte) []byte {
	if len(A) != len(B) {
		panic(fmt.Sprintf("Cannot sub vectors of length %d and %d", len(A), len(B)))
	}

	C := make([]byte, len(A))
	for i := range C {
		C[i] = Sub(A[i], B[i])
	}

	return C
}

// ScaleVec multiplies a vector by a scalar element-wise.
func ScaleVec(b byte, a []byte) []byte {
	C := make([]byte, len(a))
	for i := range C {
		C[i] = Mul(b, a[i])
	}
	return C
}

// DotVec takes the scalar product of two vectors.
func DotVec(A, B []byte) byte {
	if len(A) != len(B) {
		panic(fmt.Sprintf("Cannot dot vectors of length %d and %d", len(A), len(B)))
	}

	var acc byte
	for i := range A {
		acc = Add(acc, Mul(A[i], B[i]))
	}

	return acc
}
