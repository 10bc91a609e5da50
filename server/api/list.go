package api

import (
	"github.com/consensys/gnark/std/math/uints"

	zksha3 "github.com/zkhash/sha3-zk/circuits/sha3"
)

// Preimage sizes the server compiles circuits for. The preimage length is
// baked into the constraint system, so every supported size is its own
// circuit.
const (
	PREIMAGE_SIZE32  = 32
	PREIMAGE_SIZE64  = 64
	PREIMAGE_SIZE136 = 136 // one full sponge block
)

var CircuitList = map[string]CircuitInfo{
	"sha3-256-32": {
		Circuit: &zksha3.Circuit{
			Preimage: make([]uints.U8, PREIMAGE_SIZE32),
		},
		Name:        "sha3-256-32",
		Version:     1,
		Description: "Proves knowledge of a 32-byte preimage for a public SHA3-256 digest",
		InputParser: &zksha3.CircuitInputParser{PreimageBytes: PREIMAGE_SIZE32},
	},
	"sha3-256-64": {
		Circuit: &zksha3.Circuit{
			Preimage: make([]uints.U8, PREIMAGE_SIZE64),
		},
		Name:        "sha3-256-64",
		Version:     1,
		Description: "Proves knowledge of a 64-byte preimage for a public SHA3-256 digest",
		InputParser: &zksha3.CircuitInputParser{PreimageBytes: PREIMAGE_SIZE64},
	},
	"sha3-256-136": {
		Circuit: &zksha3.Circuit{
			Preimage: make([]uints.U8, PREIMAGE_SIZE136),
		},
		Name:        "sha3-256-136",
		Version:     1,
		Description: "Proves knowledge of a 136-byte (one block) preimage for a public SHA3-256 digest",
		InputParser: &zksha3.CircuitInputParser{PreimageBytes: PREIMAGE_SIZE136},
	},
}
