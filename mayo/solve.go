package mayo

import "mayo-arith/field"

// Constant-time solver for the linear systems the signing layer produces.
// The pivot search, row selection and back-substitution all run on mask
// arithmetic: no row index, pivot value or matrix entry ever selects a
// branch or a memory address.

// SampleSolution solves A x = y over GF(16), seeding the free variables
// of the solution from the randomizer r. A is the flat M x ACols system
// matrix whose last column is scratch space; callers must allocate it
// with the row count padded to the next multiple of 8, as the
// back-substitution reads rows eight at a time. A is consumed, x receives
// the K*O solution. Returns false when A is rank deficient.
func SampleSolution(A, y, r, x []byte) bool {
	// x <- r
	copy(x, r)

	// compute Ar
	var Ar [M]byte
	for i := 0; i < M; i++ {
		A[K*O+i*ACols] = 0 // clear the scratch column
	}
	matMul(A, r, Ar[:], ACols, M, 1)

	// move y - Ar to the last column of A
	for i := 0; i < M; i++ {
		A[K*O+i*ACols] = field.Sub(y[i], Ar[i])
	}

	EchelonForm(A, M, ACols)

	// a zero last row (excluding the y entry) means A has rank below M
	var fullRank byte
	for i := 0; i < ACols-1; i++ {
		fullRank |= A[(M-1)*ACols+i]
	}

	if fullRank == 0 {
		return false
	}

	// back-substitution, top rows updated eight at a time
	for row := M - 1; row >= 0; row-- {
		var finished byte
		colUpperBound := min(row+(32/(M-row)), K*O-1)

		for col := row; col <= colUpperBound; col++ {
			correctColumn := ctCompare8(A[row*ACols+col], 0) & ^finished

			u := correctColumn & A[row*ACols+ACols-1]
			x[col] ^= u

			for i := 0; i < row; i += 8 {
				tmp := (uint64(A[i*ACols+col]) << 0) ^
					(uint64(A[(i+1)*ACols+col]) << 8) ^
					(uint64(A[(i+2)*ACols+col]) << 16) ^
					(uint64(A[(i+3)*ACols+col]) << 24) ^
					(uint64(A[(i+4)*ACols+col]) << 32) ^
					(uint64(A[(i+5)*ACols+col]) << 40) ^
					(uint64(A[(i+6)*ACols+col]) << 48) ^
					(uint64(A[(i+7)*ACols+col]) << 56)

				tmp = field.MulFx8(u, tmp)

				A[i*ACols+ACols-1] ^= byte(tmp & 0xf)
				A[(i+1)*ACols+ACols-1] ^= byte((tmp >> 8) & 0xf)
				A[(i+2)*ACols+ACols-1] ^= byte((tmp >> 16) & 0xf)
				A[(i+3)*ACols+ACols-1] ^= byte((tmp >> 24) & 0xf)
				A[(i+4)*ACols+ACols-1] ^= byte((tmp >> 32) & 0xf)
				A[(i+5)*ACols+ACols-1] ^= byte((tmp >> 40) & 0xf)
				A[(i+6)*ACols+ACols-1] ^= byte((tmp >> 48) & 0xf)
				A[(i+7)*ACols+ACols-1] ^= byte((tmp >> 56) & 0xf)
			}

			finished |= correctColumn
		}
	}

	return true
}

// EchelonForm puts the flat nRows x nCols nibble matrix A into row
// echelon form with leading ones, in place and in constant time.
func EchelonForm(A []byte, nRows, nCols int) {
	rowLen := (nCols + 15) / 16

	pivotRowData := make([]uint64, rowLen)
	pivotRowData2 := make([]uint64, rowLen)
	packedA := make([]uint64, rowLen*nRows)

	for i := 0; i < nRows; i++ {
		packRow(A, i*nCols, packedA, i*rowLen, nCols)
	}

	var pivotRow int
	for pivotCol := 0; pivotCol < nCols; pivotCol++ {
		pivotRowLowerBound := max(0, pivotCol+nRows-nCols)
		pivotRowUpperBound := min(nRows-1, pivotCol)

		for i := 0; i < rowLen; i++ {
			pivotRowData[i] = 0
			pivotRowData2[i] = 0
		}

		// scan candidate rows, conditionally absorbing each one until the
		// accumulated pivot entry is nonzero
		var pivot byte
		pivotIsZero := ^uint64(0)
		for row := pivotRowLowerBound; row <= min(nRows-1, pivotRowUpperBound+32); row++ {
			isPivotRow := ^ctCompare(row, pivotRow)
			belowPivotRow := ctIsGreaterThan(row, pivotRow)

			for j := 0; j < rowLen; j++ {
				mask := isPivotRow | (belowPivotRow & pivotIsZero)
				pivotRowData[j] ^= mask & packedA[row*rowLen+j]
			}

			pivot = extractElement(pivotRowData, pivotCol)
			pivotIsZero = ^ctCompare(int(pivot), 0)
		}

		// scale the pivot row to a leading 1
		inverse := field.Inv(pivot)
		vecMulAddPacked(rowLen, pivotRowData, inverse, pivotRowData2, 0)

		// conditionally write the scaled pivot row back
		for row := pivotRowLowerBound; row <= pivotRowUpperBound; row++ {
			doCopy := ^ctCompare(row, pivotRow) & ^pivotIsZero
			doNotCopy := ^doCopy
			for col := 0; col < rowLen; col++ {
				packedA[row*rowLen+col] = (doNotCopy & packedA[row*rowLen+col]) +
					(doCopy & pivotRowData2[col])
			}
		}

		// eliminate the pivot column from the rows below
		for row := pivotRowLowerBound; row < nRows; row++ {
			belowPivot := byte(0)
			if row > pivotRow {
				belowPivot = 1
			}
			eltToElim := extractElement(packedA[row*rowLen:], pivotCol)
			vecMulAddPacked(rowLen, pivotRowData2, belowPivot*eltToElim, packedA, row*rowLen)
		}

		pivotRow += -int(^pivotIsZero)
	}

	temp := make([]byte, rowLen*16)
	for i := 0; i < nRows; i++ {
		unpackRow(rowLen, packedA, i*rowLen, temp)
		copy(A[i*nCols:(i+1)*nCols], temp[:nCols])
	}
}

// packRow packs one nibble row into 16-nibble limbs.
func packRow(in []byte, inStart int, out []uint64, outStart, nCols int) {
	for i := 0; i < nCols; i++ {
		out[outStart+i/16] |= uint64(in[inStart+i]&0xf) << ((i % 16) * 4)
	}
}

// unpackRow expands legs limbs back into nibbles.
func unpackRow(legs int, in []uint64, inStart int, out []byte) {
	for i := 0; i < legs*16; i++ {
		out[i] = byte(in[inStart+i/16]>>((i%16)*4)) & 0xf
	}
}

// extractElement reads the nibble at the given index of a packed row.
func extractElement(in []uint64, index int) byte {
	leg := index / 16
	offset := index & 15

	return byte((in[leg] >> (offset * 4)) & 0xf)
}

// vecMulAddPacked multiplies a packed row of legs limbs by a scalar and
// XORs it into the accumulator, as VecMulAdd does for m-vectors.
func vecMulAddPacked(legs int, in []uint64, a byte, acc []uint64, accStartIdx int) {
	tab := field.MulTable(a)

	for i := 0; i < legs; i++ {
		acc[accStartIdx+i] ^= (in[i]&lsbMask)*(tab&0xff) ^
			((in[i]>>1)&lsbMask)*((tab>>8)&0xf) ^
			((in[i]>>2)&lsbMask)*((tab>>16)&0xf) ^
			((in[i]>>3)&lsbMask)*((tab>>24)&0xf)
	}
}

// ctCompare returns the all-ones mask when a != b and zero when a == b.
func ctCompare(a, b int) uint64 {
	diff := uint64(a ^ b)
	return uint64((int64(diff) | -int64(diff)) >> 63)
}

// ctCompare8 returns 0xff when a != b and zero when a == b.
func ctCompare8(a, b byte) byte {
	return byte((-int32(a ^ b)) >> 31)
}

// ctIsGreaterThan returns the all-ones mask when a > b.
func ctIsGreaterThan(a, b int) uint64 {
	return uint64(int64(b-a) >> 63)
}
