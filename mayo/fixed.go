package mayo

import "mayo-arith/field"

// Fixed-dimension counterparts of the dynamic operations in the field
// package, specialized to the parameter constants of the selected level.
// Shapes are baked into the signatures, so no runtime dimension checks
// are needed; results are identical to the dynamic variants on matching
// inputs.

// MulVecOilMat multiplies a vinegar-length row vector by the V x O oil
// space matrix, as evaluated for every signature equation.
func MulVecOilMat(vec *[V]byte, mat *[V][O]byte) [O]byte {
	var out [O]byte
	for j := 0; j < O; j++ {
		for i := 0; i < V; i++ {
			out[j] = field.Add(out[j], field.Mul(vec[i], mat[i][j]))
		}
	}
	return out
}

// MulMatVecV multiplies a V x V quadratic-form matrix by a column vector
// of vinegar variables.
func MulMatVecV(mat *[V][V]byte, vec *[V]byte) [V]byte {
	var out [V]byte
	for i := 0; i < V; i++ {
		for k := 0; k < V; k++ {
			out[i] = field.Add(out[i], field.Mul(mat[i][k], vec[k]))
		}
	}
	return out
}

// MulSystemMat multiplies the M-row linear system matrix by a flattened
// K*O coefficient vector, one output entry per target equation.
func MulSystemMat(mat *[M][K * O]byte, vec *[K * O]byte) [M]byte {
	var out [M]byte
	for i := 0; i < M; i++ {
		for k := 0; k < K*O; k++ {
			out[i] = field.Add(out[i], field.Mul(mat[i][k], vec[k]))
		}
	}
	return out
}

// DotProductN takes the scalar product of two N-length vectors.
func DotProductN(a, b *[N]byte) byte {
	var acc byte
	for i := 0; i < N; i++ {
		acc = field.Add(acc, field.Mul(a[i], b[i]))
	}
	return acc
}

// AddVecM adds two M-length accumulator vectors element-wise.
func AddVecM(a, b *[M]byte) [M]byte {
	var out [M]byte
	for i := 0; i < M; i++ {
		out[i] = field.Add(a[i], b[i])
	}
	return out
}

// SubVecM subtracts two M-length accumulator vectors element-wise.
func SubVecM(a, b *[M]byte) [M]byte {
	var out [M]byte
	for i := 0; i < M; i++ {
		out[i] = field.Sub(a[i], b[i])
	}
	return out
}

// lincomb takes the dot product of the first n entries of a with the
// column of b read at stride m. Entries past either slice count as zero,
// which lets callers run a K*O system row against a K*O vector.
func lincomb(a, b []byte, n, m int) byte {
	var ret byte
	for i := 0; i < n; i++ {
		if i >= len(a) || i*m >= len(b) {
			continue // counts as a zero entry
		}
		ret = field.Mul(a[i], b[i*m]) ^ ret
	}
	return ret
}

// matMul multiplies the flat rowA x colrowAB matrix a with the flat
// colrowAB x colB matrix b into c.
func matMul(a, b, c []byte, colrowAB, rowA, colB int) {
	for i := 0; i < rowA; i++ {
		aOffset := i * colrowAB
		for j := 0; j < colB; j++ {
			c[i*colB+j] = lincomb(a[aOffset:], b[j:], colrowAB, colB)
		}
	}
}

// matAdd adds two flat m x n matrices into c starting at cStartIdx.
func matAdd(a, b, c []byte, cStartIdx, m, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[cStartIdx+i*n+j] = field.Add(a[i*n+j], b[i*n+j])
		}
	}
}
