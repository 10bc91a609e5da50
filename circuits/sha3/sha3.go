// Package zksha3 implements SHA3-256 as a gnark gadget operating on
// boolean wires.
//
// The hasher consumes an arbitrary-length sequence of bits (each a
// frontend.Variable constrained to {0,1}) and produces the 256 digest bits
// as new wires, using the sponge construction over a bit-level
// Keccak-f[1600] permutation. Rotations and lane permutations are wire
// relabelings, so the constraint cost is carried by the XOR and AND gates
// of theta, chi and iota only.
//
// Bit order is least significant bit first throughout: flat bit i of a
// byte stream is bit i%8 of byte i/8, which matches the little-endian lane
// packing of FIPS 202 and golang.org/x/crypto/sha3.
package zksha3

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

const (
	// StateBits is the width of the Keccak-f permutation.
	StateBits = 1600
	// RateBits is the sponge rate for 256-bit output: 1600 - 2*256.
	RateBits = 1088
	// DigestBits is the output size.
	DigestBits = 256

	laneBits  = 64
	rateLanes = RateBits / laneBits // 17
)

// Hasher absorbs bit wires and squeezes a 256-bit digest. Create one with
// New256 or NewLegacyKeccak256; a Hasher must not be shared across
// independent circuit builds.
type Hasher struct {
	w      *laneAPI
	suffix []frontend.Variable // domain separation bits, appended before padding
	in     []frontend.Variable
}

// New256 returns a SHA3-256 hasher. Per FIPS 202 the message is extended
// with the domain separation bits 01 before pad10*1 is applied.
func New256(api frontend.API) (*Hasher, error) {
	return newHasher(api, []frontend.Variable{0, 1})
}

// NewLegacyKeccak256 returns a pre-standard Keccak-256 hasher (no domain
// separation bits, same rate and output size). Only use this for
// compatibility with existing cryptosystems such as Ethereum; all other
// users should use New256.
func NewLegacyKeccak256(api frontend.API) (*Hasher, error) {
	return newHasher(api, nil)
}

func newHasher(api frontend.API, suffix []frontend.Variable) (*Hasher, error) {
	if api == nil {
		return nil, fmt.Errorf("nil constraint builder")
	}
	return &Hasher{w: newLaneAPI(api), suffix: suffix}, nil
}

// Write appends input bits. Each bit must already be constrained to {0,1}.
func (h *Hasher) Write(bits []frontend.Variable) {
	h.in = append(h.in, bits...)
}

// Reset discards all input written so far.
func (h *Hasher) Reset() {
	h.in = nil
}

// Sum pads the absorbed input and returns the 256 digest wires. The
// receiver is not modified, so Sum can be called again after more writes.
func (h *Hasher) Sum() []frontend.Variable {
	msg := make([]frontend.Variable, 0, len(h.in)+len(h.suffix))
	msg = append(msg, h.in...)
	msg = append(msg, h.suffix...)
	padded := pad101(msg)
	if len(padded)%RateBits != 0 {
		panic("sha3: padded input is not a multiple of the rate")
	}

	st := newState()
	for off := 0; off < len(padded); off += RateBits {
		st = h.absorb(st, padded[off:off+RateBits])
	}
	return squeeze(st)
}

// newState allocates the zero-initialized 5x5 lane matrix, 1600 constant
// wires in total.
func newState() (st [25]lane) {
	for i := range st {
		st[i] = constLane(0)
	}
	return st
}

// absorb XORs one rate-sized block into the first 17 lanes, leaving the 8
// capacity lanes untouched, then permutes. Blocks must be absorbed in
// order: the permuted state feeds the next block.
func (h *Hasher) absorb(st [25]lane, block []frontend.Variable) [25]lane {
	for i := 0; i < rateLanes; i++ {
		var b lane
		copy(b[:], block[i*laneBits:(i+1)*laneBits])
		st[i] = h.w.xor(st[i], b)
	}
	return h.w.permute(st)
}

// squeeze reads the first 256 bits of the rate portion: lanes 0 through 3
// flattened LSB-first. One rate holds more than 256 bits, so a single
// squeeze suffices and no extra permutation runs.
func squeeze(st [25]lane) []frontend.Variable {
	out := make([]frontend.Variable, 0, DigestBits)
	for i := 0; i < DigestBits/laneBits; i++ {
		out = append(out, st[i][:]...)
	}
	return out
}

// Sum256 computes the SHA3-256 digest of a bit sequence in one shot.
func Sum256(api frontend.API, bits []frontend.Variable) ([]frontend.Variable, error) {
	h, err := New256(api)
	if err != nil {
		return nil, err
	}
	h.Write(bits)
	return h.Sum(), nil
}
