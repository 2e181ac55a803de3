// Package field implements arithmetic over GF(16), the binary field of 16
// elements with irreducible polynomial f(t) = t^4 + t + 1, together with
// the matrix and vector algebra built on top of it.
//
// Field elements are nibbles stored in a byte; bits above bit 3 are always
// zero outside of multiplication's intermediate state. Every scalar
// operation is branch-free and table-free because operands may carry
// secret key material and execution time must not depend on their values.
package field

// Neg returns the additive inverse of x. Every element of GF(2^n) is its
// own additive inverse, so negation has no effect.
func Neg(x byte) byte {
	return x
}

// Add adds two field elements. Polynomial addition over GF(2) is bitwise
// XOR as there is no carry.
func Add(x, y byte) byte {
	return x ^ y
}

// Sub subtracts y from x. Subtraction equals addition in characteristic 2.
func Sub(x, y byte) byte {
	return x ^ y
}

// Mul multiplies two field elements: the carryless product of the two
// nibbles reduced modulo f(t) = t^4 + t + 1.
func Mul(x, y byte) byte {
	// Carryless multiplication, one masked summand per bit of x.
	r := (x & 1) * y
	r ^= (x & 2) * y
	r ^= (x & 4) * y
	r ^= (x & 8) * y

	// Fold bits 4..6 back down using t^4 = t + 1.
	high := r & 0xf0
	r ^= (high >> 4) ^ (high >> 3)

	return r & 0x0f
}

// Inv returns the multiplicative inverse of x as x^14 by repeated
// squaring: nonzero elements satisfy x^15 = 1, hence x^14 = x^-1.
// Inv(0) returns 0; callers that need a domain check must apply it
// themselves.
func Inv(x byte) byte {
	x2 := Mul(x, x)
	x4 := Mul(x2, x2)
	x6 := Mul(x2, x4)
	x8 := Mul(x4, x4)
	return Mul(x8, x6)
}

// Div divides x by y via multiplication with the inverse of y.
// Div(x, 0) returns 0, an unchecked degenerate case.
func Div(x, y byte) byte {
	return Mul(x, Inv(y))
}

// MulFx8 multiplies each of the eight nibbles packed in b by the scalar a,
// reducing every lane modulo f(t).
func MulFx8(a byte, b uint64) uint64 {
	p := uint64(a&1) * b
	p ^= uint64(a&2) * b
	p ^= uint64(a&4) * b
	p ^= uint64(a&8) * b

	high := p & 0xf0f0f0f0f0f0f0f0
	return (p ^ (high >> 4) ^ (high >> 3)) & 0x0f0f0f0f0f0f0f0f
}

// MulTable returns the word holding b*1, b*2, b*4 and b*8 in its four low
// bytes, derived arithmetically so that no secret value indexes memory.
// The batched multiply-add reads its per-bit factors out of this word.
func MulTable(b byte) uint64 {
	x := uint64(b) * 0x08040201

	highNibbles := x & 0xf0f0f0f0
	return x ^ (highNibbles >> 4) ^ (highNibbles >> 3)
}
