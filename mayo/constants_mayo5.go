//go:build mayo5

package mayo

const N = 154
const M = 142
const mVecLimbs = (M + 15) / 16
const O = 12
const V = N - O
const K = 12
const ACols = K*O + 1
const q = 16
const OBytes = V * O / 2
const VBytes = (V + 1) / 2

const P1Limbs = V * (V + 1) / 2 * mVecLimbs
const P2Limbs = V * O * mVecLimbs
const P3Limbs = O * (O + 1) / 2 * mVecLimbs

// Tail coefficients of the degree-K extension polynomial z^K - tailF(z).
var tailF = []byte{4, 0, 8, 1}
