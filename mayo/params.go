// Package mayo holds the scheme-parameterized arithmetic of MAYO: the
// dimension constants of the four security levels, fixed-dimension
// matrix and vector operations specialized to those constants, the
// bitsliced m-fold vector representation with its codecs, and a
// constant-time linear-system solver. The algebra itself lives in the
// field package; everything here is built on top of it.
package mayo

type SecurityLevel int

const (
	LevelOne SecurityLevel = iota
	LevelTwo
	LevelThree
	LevelFive
)

// Params carries the scheme dimensions as runtime values, for call sites
// that work with dynamically-shaped matrices. The build-tag constants in
// constants_mayo*.go are the compile-time mirror used by the fixed-
// dimension operations.
type Params struct {
	Q, M, N, O, K int
	// V is the number of vinegar variables, N - O.
	V int
}

// ParamsForLevel returns the parameters of the given security level.
func ParamsForLevel(level SecurityLevel) *Params {
	switch level {
	case LevelOne:
		return initParams(86, 78, 8, 10, 16)
	case LevelTwo:
		return initParams(81, 64, 17, 4, 16)
	case LevelThree:
		return initParams(118, 108, 10, 11, 16)
	default: // level five
		return initParams(154, 142, 12, 12, 16)
	}
}

func initParams(n, m, o, k, q int) *Params {
	if q != 16 {
		panic("q is fixed to be 16, in this version of MAYO")
	} else if k >= n-o {
		panic("k should be smaller than n-o")
	}

	return &Params{
		Q: q,
		M: m,
		N: n,
		O: o,
		K: k,
		V: n - o,
	}
}
