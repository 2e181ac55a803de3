package mayo

import "encoding/binary"

// EncodeVec packs a slice of field elements two nibbles to a byte, low
// nibble first. An odd trailing element occupies the low nibble of the
// final byte.
func EncodeVec(elems []byte) []byte {
	encoded := make([]byte, (len(elems)+1)/2)

	for i := 0; i+1 < len(elems); i += 2 {
		encoded[i/2] = elems[i+1]<<4 | elems[i]&0xf
	}

	if len(elems)%2 == 1 {
		encoded[(len(elems)-1)/2] = elems[len(elems)-1] & 0xf
	}

	return encoded
}

// DecodeVec unpacks n field elements from a nibble-packed byte slice.
func DecodeVec(n int, src []byte) []byte {
	decoded := make([]byte, n)

	for i := 0; i < n/2; i++ {
		decoded[i*2] = src[i] & 0xf
		decoded[i*2+1] = src[i] >> 4
	}

	if n%2 == 1 {
		decoded[n-1] = src[n/2] & 0xf
	}

	return decoded
}

// DecodeMatrix unpacks a nibble-packed byte slice into a rows x columns
// matrix, row-major.
func DecodeMatrix(rows, columns int, src []byte) [][]byte {
	flat := DecodeVec(rows*columns, src)

	decoded := make([][]byte, rows)
	for i := range decoded {
		decoded[i] = flat[i*columns : (i+1)*columns]
	}

	return decoded
}

// Uint64SliceToBytes serializes limbs little-endian into dst.
func Uint64SliceToBytes(dst []byte, src []uint64) {
	for _, s := range src {
		binary.LittleEndian.PutUint64(dst, s)
		dst = dst[8:]
	}
}

// BytesToUint64Slice deserializes little-endian bytes into limbs.
func BytesToUint64Slice(dst []uint64, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src)
		src = src[8:]
	}
}

// UnpackMVecs expands vecs nibble-packed m-vectors of M/2 bytes each into
// limb vectors of mVecLimbs words, zero-padding the tail of every vector.
func UnpackMVecs(in []byte, out []uint64, vecs int) {
	tmp := make([]byte, mVecLimbs*8)

	for i := vecs - 1; i >= 0; i-- {
		for j := range tmp {
			tmp[j] = 0
		}
		copy(tmp, in[i*M/2:(i+1)*M/2])
		BytesToUint64Slice(out[i*mVecLimbs:(i+1)*mVecLimbs], tmp)
	}
}

// PackMVecs packs vecs limb-encoded m-vectors back into M/2 bytes each.
func PackMVecs(in []uint64, out []byte, vecs int) {
	tmp := make([]byte, mVecLimbs*8)

	for i := 0; i < vecs; i++ {
		Uint64SliceToBytes(tmp, in[i*mVecLimbs:(i+1)*mVecLimbs])
		copy(out[i*M/2:(i+1)*M/2], tmp[:M/2])
	}
}
