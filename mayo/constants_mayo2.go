//go:build !mayo1 && !mayo3 && !mayo5

package mayo

// MAYO-2 parameters, the default build. Select another level with the
// mayo1, mayo3 or mayo5 build tag.

const N = 81
const M = 64
const mVecLimbs = (M + 15) / 16
const O = 17
const V = N - O
const K = 4
const ACols = K*O + 1
const q = 16
const OBytes = V * O / 2
const VBytes = (V + 1) / 2

const P1Limbs = V * (V + 1) / 2 * mVecLimbs
const P2Limbs = V * O * mVecLimbs
const P3Limbs = O * (O + 1) / 2 * mVecLimbs

// Tail coefficients of the degree-K extension polynomial z^K - tailF(z).
var tailF = []byte{8, 0, 2, 8}
