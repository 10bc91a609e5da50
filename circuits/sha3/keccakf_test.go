package zksha3

import (
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

// stepCircuit applies one permutation sub-step (or more) to a full state
// and compares against the expected lanes. Having every sub-step
// addressable keeps a broken round debuggable in isolation.
type stepCircuit struct {
	In       [25]frontend.Variable
	Expected [25]frontend.Variable `gnark:",public"`

	step  string
	round int
}

func (c *stepCircuit) Define(api frontend.API) error {
	w := newLaneAPI(api)
	var st [25]lane
	for i := range c.In {
		st[i] = w.asLane(c.In[i])
	}

	switch c.step {
	case "theta":
		st = w.theta(st)
	case "rho":
		st = rho(st)
	case "pi":
		st = pi(st)
	case "chi":
		st = w.chi(st)
	case "iota":
		st = w.iotaRound(st, c.round)
	case "round":
		st = w.iotaRound(w.chi(pi(rho(w.theta(st)))), c.round)
	case "permute":
		st = w.permute(st)
	}

	for i := range st {
		api.AssertIsEqual(w.fromLane(st[i]), c.Expected[i])
	}
	return nil
}

func randomState(rng *rand.Rand) (st [25]uint64) {
	for i := range st {
		st[i] = rng.Uint64()
	}
	return st
}

func assignState(c *stepCircuit, in, expected [25]uint64) {
	for i := range in {
		c.In[i] = in[i]
		c.Expected[i] = expected[i]
	}
}

func TestPermutationSubSteps(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(42))

	native := map[string]func([25]uint64) [25]uint64{
		"theta": nativeTheta,
		"rho":   nativeRho,
		"pi":    nativePi,
		"chi":   nativeChi,
		"iota":  func(a [25]uint64) [25]uint64 { return nativeIota(a, 7) },
		"round": func(a [25]uint64) [25]uint64 { return nativeIota(nativeChi(nativePi(nativeRho(nativeTheta(a)))), 0) },
	}

	for step, ref := range native {
		assert.Run(func(assert *test.Assert) {
			in := randomState(rng)
			witness := &stepCircuit{}
			assignState(witness, in, ref(in))

			circuit := &stepCircuit{step: step, round: 7}
			if step == "round" {
				circuit.round = 0
			}
			assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
		}, step)
	}
}

func TestPermutationFull(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(43))

	in := randomState(rng)
	witness := &stepCircuit{}
	assignState(witness, in, nativeKeccakF(in))
	assert.NoError(test.IsSolved(&stepCircuit{step: "permute"}, witness, ecc.BN254.ScalarField()))
}

func TestPermutationZeroStateVector(t *testing.T) {
	assert := test.NewAssert(t)

	witness := &stepCircuit{}
	assignState(witness, [25]uint64{}, keccakFZeroVector)
	assert.NoError(test.IsSolved(&stepCircuit{step: "permute"}, witness, ecc.BN254.ScalarField()))
}
