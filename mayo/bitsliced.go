package mayo

import "mayo-arith/field"

// Bitsliced m-fold representation: each matrix entry is an m-vector of
// GF(16) elements, packed 16 nibbles per uint64 across mVecLimbs limbs.
// The layout follows the reference C implementation of MAYO
// (https://github.com/PQCMayo/MAYO-C/); decoding any result and applying
// the scalar operations element-wise must give the same answer, which the
// tests enforce.
//
// All operations accumulate in place into acc, indexed by limb offsets.

const lsbMask uint64 = 0x1111111111111111

// VecAdd XORs the m-vector at in[inStart:] into the accumulator.
func VecAdd(in []uint64, inStart int, acc []uint64, accStart int) {
	for i := 0; i < mVecLimbs; i++ {
		acc[accStart+i] ^= in[inStart+i]
	}
}

// VecCopy copies the m-vector at in[inStart:] to out[outStart:].
func VecCopy(in []uint64, inStart int, out []uint64, outStart int) {
	for i := 0; i < mVecLimbs; i++ {
		out[outStart+i] = in[inStart+i]
	}
}

// VecMulAdd multiplies the m-vector at in[inStart:] by a scalar nibble
// and XORs the product into the accumulator. The per-bit factors come
// from field.MulTable, so no secret value selects a branch or an index.
func VecMulAdd(in []uint64, inStart int, nibble byte, acc []uint64, accStart int) {
	tab := field.MulTable(nibble)

	for i := 0; i < mVecLimbs; i++ {
		acc[accStart+i] ^= (in[inStart+i]&lsbMask)*(tab&0xff) ^
			((in[inStart+i]>>1)&lsbMask)*((tab>>8)&0xf) ^
			((in[inStart+i]>>2)&lsbMask)*((tab>>16)&0xf) ^
			((in[inStart+i]>>3)&lsbMask)*((tab>>24)&0xf)
	}
}

// VecMulAddX multiplies the m-vector at in[inStart:] by t and XORs the
// product into the accumulator.
func VecMulAddX(in []uint64, inStart int, acc []uint64, accStart int) {
	maskMsb := uint64(0x8888888888888888)
	for i := 0; i < mVecLimbs; i++ {
		t := in[inStart+i] & maskMsb
		acc[accStart+i] ^= ((in[inStart+i] ^ t) << 1) ^ ((t >> 3) * 3)
	}
}

// VecMulAddXInv multiplies the m-vector at in[inStart:] by the inverse of
// t and XORs the product into the accumulator.
func VecMulAddXInv(in []uint64, inStart int, acc []uint64, accStart int) {
	for i := 0; i < mVecLimbs; i++ {
		t := in[inStart+i] & lsbMask
		acc[accStart+i] ^= ((in[inStart+i] ^ t) >> 1) ^ (t * 9)
	}
}

// MatMulAdd multiplies a bitsliced matrix of bsMatRows x bsMatCols
// m-vector entries with a nibble matrix of matCols columns, accumulating
// into acc. With triangular set to 1 the bitsliced matrix stores only its
// upper-triangular entries, row by row.
func MatMulAdd(bsMat []uint64, mat [][]byte, acc []uint64, bsMatRows, bsMatCols, matCols, triangular int) {
	bsMatEntriesUsed := 0

	for r := 0; r < bsMatRows; r++ {
		for c := r * triangular; c < bsMatCols; c++ {
			for k := 0; k < matCols; k++ {
				VecMulAdd(bsMat, bsMatEntriesUsed*mVecLimbs, mat[c][k], acc, (r*matCols+k)*mVecLimbs)
			}
			bsMatEntriesUsed++
		}
	}
}

// MulAddMatTransMat multiplies the transpose of a matRows x matCols
// nibble matrix with a bitsliced matrix of bsMatCols columns,
// accumulating into acc.
func MulAddMatTransMat(mat [][]byte, bsMat []uint64, acc []uint64, matRows, matCols, bsMatCols int) {
	for r := 0; r < matCols; r++ {
		for c := 0; c < matRows; c++ {
			for k := 0; k < bsMatCols; k++ {
				VecMulAdd(bsMat, (c*bsMatCols+k)*mVecLimbs, mat[c][r], acc, (r*bsMatCols+k)*mVecLimbs)
			}
		}
	}
}

// Upper folds a square bitsliced matrix of size x size m-vector entries
// to upper-triangular form: entry (r, c) above the diagonal absorbs entry
// (c, r). The result stores only the triangular entries, row by row.
func Upper(matrix []uint64, matrixUpper []uint64, size int) {
	entriesUsed := 0

	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			VecCopy(matrix, mVecLimbs*(r*size+c), matrixUpper, mVecLimbs*entriesUsed)

			if r != c {
				VecAdd(matrix, mVecLimbs*(c*size+r), matrixUpper, mVecLimbs*entriesUsed)
			}

			entriesUsed++
		}
	}
}
