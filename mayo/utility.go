package mayo

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"
)

// aes128ctr expands a 16-byte seed into l pseudorandom bytes with
// AES-128-CTR over a zero nonce.
func aes128ctr(seed []byte, l int) []byte {
	var nonce [16]byte
	block, err := aes.NewCipher(seed)
	if err != nil {
		panic(err)
	}
	ctr := cipher.NewCTR(block, nonce[:])
	dst := make([]byte, l)
	ctr.XORKeyStream(dst, dst)
	return dst
}

// shake256 absorbs the inputs in order and squeezes outputLength bytes.
func shake256(outputLength int, inputs ...[]byte) []byte {
	output := make([]byte, outputLength)

	h := sha3.NewShake256()
	for _, input := range inputs {
		_, _ = h.Write(input)
	}
	_, _ = h.Read(output)

	return output
}
