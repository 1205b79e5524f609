package uint256

import (
	"math/big"
	"math/rand"

	holiman "github.com/holiman/uint256"
)

// toOracle converts u to the reference implementation used to cross-check
// arithmetic.
func toOracle(u Uint256) *holiman.Int {
	var be [Size]byte
	for i := range be {
		be[i] = u.b[Size-1-i]
	}

	return new(holiman.Int).SetBytes(be[:])
}

func fromOracle(x *holiman.Int) (u Uint256) {
	be := x.Bytes32()
	for i := range be {
		u.b[i] = be[Size-1-i]
	}

	return u
}

func toBig(u Uint256) *big.Int {
	var be [Size]byte
	for i := range be {
		be[i] = u.b[Size-1-i]
	}

	return new(big.Int).SetBytes(be[:])
}

// randomUint256 returns a value with a random number of significant bytes so
// both small and full width values are exercised.
func randomUint256(rng *rand.Rand) (u Uint256) {
	n := rng.Intn(Size + 1)
	rng.Read(u.b[:n])

	return u
}
