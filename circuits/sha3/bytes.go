package zksha3

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	stdbits "github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/math/uints"
)

// Byte-oriented wrappers for circuits that carry their data as uints.U8.
// The bit/byte conversion is explicit: bit i of the flat stream is bit i%8
// of byte i/8 (LSB first), matching the reference byte serialization.

// Sum256Bytes computes the SHA3-256 digest of a byte sequence and returns
// it as 32 bytes.
func Sum256Bytes(api frontend.API, in []uints.U8) ([]uints.U8, error) {
	h, err := New256(api)
	if err != nil {
		return nil, err
	}
	h.Write(BytesToBits(api, in))
	return BitsToBytes(api, h.Sum())
}

// Keccak256Bytes is the legacy Keccak-256 counterpart of Sum256Bytes.
func Keccak256Bytes(api frontend.API, in []uints.U8) ([]uints.U8, error) {
	h, err := NewLegacyKeccak256(api)
	if err != nil {
		return nil, err
	}
	h.Write(BytesToBits(api, in))
	return BitsToBytes(api, h.Sum())
}

// BytesToBits decomposes bytes into boolean wires, 8 per byte, LSB first.
// The decomposition constrains every output wire to {0,1}.
func BytesToBits(api frontend.API, in []uints.U8) []frontend.Variable {
	bits := make([]frontend.Variable, 0, 8*len(in))
	for _, b := range in {
		bits = append(bits, stdbits.ToBinary(api, b.Val, stdbits.WithNbDigits(8))...)
	}
	return bits
}

// BitsToBytes packs boolean wires into bytes, 8 per byte, LSB first. The
// bit length must be a multiple of 8; the inputs are assumed constrained.
func BitsToBytes(api frontend.API, bits []frontend.Variable) ([]uints.U8, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("bit length %d is not a multiple of 8", len(bits))
	}
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return nil, fmt.Errorf("initializing uints: %w", err)
	}
	out := make([]uints.U8, len(bits)/8)
	for i := range out {
		v := stdbits.FromBinary(api, bits[8*i:8*i+8], stdbits.WithUnconstrainedInputs())
		out[i] = uapi.ByteValueOf(v)
	}
	return out, nil
}
