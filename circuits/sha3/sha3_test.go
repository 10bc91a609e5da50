package zksha3_test

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"
	"golang.org/x/crypto/sha3"

	zksha3 "github.com/zkhash/sha3-zk/circuits/sha3"
)

type hashCircuit struct {
	In       []uints.U8
	Expected [32]uints.U8 `gnark:",public"`

	legacy bool
}

func (c *hashCircuit) Define(api frontend.API) error {
	var digest []uints.U8
	var err error
	if c.legacy {
		digest, err = zksha3.Keccak256Bytes(api, c.In)
	} else {
		digest, err = zksha3.Sum256Bytes(api, c.In)
	}
	if err != nil {
		return err
	}
	if len(digest) != 32 {
		return fmt.Errorf("digest is %d bytes, want 32", len(digest))
	}

	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	for i := range c.Expected {
		uapi.ByteAssertEq(digest[i], c.Expected[i])
	}
	return nil
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func solveHash(t *testing.T, in, expected []byte, legacy bool) error {
	t.Helper()
	circuit := &hashCircuit{
		In:     make([]uints.U8, len(in)),
		legacy: legacy,
	}
	witness := &hashCircuit{
		In: uints.NewU8Array(in),
	}
	copy(witness.Expected[:], uints.NewU8Array(expected))
	return test.IsSolved(circuit, witness, ecc.BN254.ScalarField())
}

func TestSum256KnownVectors(t *testing.T) {
	assert := test.NewAssert(t)

	// NIST test vectors
	assert.NoError(solveHash(t, nil,
		mustHex(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"), false))
	assert.NoError(solveHash(t, []byte("abc"),
		mustHex(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"), false))
}

func TestSum256AgainstReference(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(7))

	// 136 bytes is exactly one rate block, 137 spills into a second one.
	for _, n := range []int{0, 1, 3, 64, 133, 134, 135, 136, 137, 272} {
		assert.Run(func(assert *test.Assert) {
			in := make([]byte, n)
			rng.Read(in)
			expected := sha3.Sum256(in)
			assert.NoError(solveHash(t, in, expected[:], false))
		}, fmt.Sprintf("len=%d", n))
	}
}

func TestLegacyKeccak256(t *testing.T) {
	assert := test.NewAssert(t)

	// Keccak-256 of the empty string, the pre-standard padding rule.
	assert.NoError(solveHash(t, nil,
		mustHex(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"), true))

	in := []byte("hello")
	h := sha3.NewLegacyKeccak256()
	h.Write(in)
	assert.NoError(solveHash(t, in, h.Sum(nil), true))
}

// bitCircuit exercises the bit-wire entry point directly: the preimage and
// digest never pass through bytes inside the circuit.
type bitCircuit struct {
	In       []frontend.Variable
	Expected [256]frontend.Variable `gnark:",public"`
}

func (c *bitCircuit) Define(api frontend.API) error {
	for i := range c.In {
		api.AssertIsBoolean(c.In[i])
	}
	digest, err := zksha3.Sum256(api, c.In)
	if err != nil {
		return err
	}
	if len(digest) != zksha3.DigestBits {
		return fmt.Errorf("digest is %d bits, want %d", len(digest), zksha3.DigestBits)
	}
	for i := range digest {
		api.AssertIsEqual(digest[i], c.Expected[i])
	}
	return nil
}

// bytesToBits mirrors the circuit convention: bit i is bit i%8 of byte
// i/8, least significant first.
func bytesToBits(b []byte) []int {
	out := make([]int, 0, 8*len(b))
	for _, v := range b {
		for z := 0; z < 8; z++ {
			out = append(out, int(v>>z)&1)
		}
	}
	return out
}

func TestSum256BitOriented(t *testing.T) {
	assert := test.NewAssert(t)

	in := []byte("abc")
	expected := mustHex(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532")

	circuit := &bitCircuit{In: make([]frontend.Variable, 8*len(in))}
	witness := &bitCircuit{In: make([]frontend.Variable, 8*len(in))}
	for i, bit := range bytesToBits(in) {
		witness.In[i] = bit
	}
	for i, bit := range bytesToBits(expected) {
		witness.Expected[i] = bit
	}
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}

// determinismCircuit hashes the same input through two independent hasher
// instances and asserts the digests agree wire for wire.
type determinismCircuit struct {
	In []frontend.Variable
}

func (c *determinismCircuit) Define(api frontend.API) error {
	for i := range c.In {
		api.AssertIsBoolean(c.In[i])
	}
	d1, err := zksha3.Sum256(api, c.In)
	if err != nil {
		return err
	}
	d2, err := zksha3.Sum256(api, c.In)
	if err != nil {
		return err
	}
	for i := range d1 {
		api.AssertIsEqual(d1[i], d2[i])
	}
	return nil
}

func TestSum256Deterministic(t *testing.T) {
	assert := test.NewAssert(t)

	in := []byte("determinism")
	circuit := &determinismCircuit{In: make([]frontend.Variable, 8*len(in))}
	witness := &determinismCircuit{In: make([]frontend.Variable, 8*len(in))}
	for i, bit := range bytesToBits(in) {
		witness.In[i] = bit
	}
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}

func hammingDistance(a, b []byte) int {
	d := 0
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// TestAvalanche guards against a degenerate permutation: flipping one
// input bit must flip a large fraction of the digest bits. Both digests
// are also recomputed in-circuit.
func TestAvalanche(t *testing.T) {
	assert := test.NewAssert(t)

	in := []byte("avalanche check, fixed input")
	flipped := append([]byte(nil), in...)
	flipped[0] ^= 0x01

	d1 := sha3.Sum256(in)
	d2 := sha3.Sum256(flipped)
	if d := hammingDistance(d1[:], d2[:]); d <= 80 {
		t.Fatalf("single bit flip changed only %d of 256 digest bits", d)
	}

	assert.NoError(solveHash(t, in, d1[:], false))
	assert.NoError(solveHash(t, flipped, d2[:], false))
}
