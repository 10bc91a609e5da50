package zksha3

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

// Circuit proves knowledge of a preimage for a public SHA3-256 digest:
// SHA3-256(Preimage) == Digest without revealing Preimage. The preimage
// length is fixed at compile time by the length of the Preimage slice.
type Circuit struct {
	// Secret input
	Preimage []uints.U8 `gnark:",secret"`

	// Public input
	Digest [32]uints.U8 `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	digest, err := Sum256Bytes(api, c.Preimage)
	if err != nil {
		return err
	}

	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	for i := range c.Digest {
		uapi.ByteAssertEq(digest[i], c.Digest[i])
	}
	return nil
}

// CircuitInputParser builds a Circuit assignment from the JSON inputs of a
// prove/verify request. PreimageBytes must match the compiled circuit.
type CircuitInputParser struct {
	PreimageBytes int
}

type publicInput struct {
	Digest string `json:"digest"` // hex, 32 bytes
}

type privateInput struct {
	Preimage string `json:"preimage"` // hex
}

// Parse decodes the public digest and the private preimage. For
// verification the private input is empty JSON and the preimage is left
// zeroed; only the public part of the resulting witness is used then.
func (p *CircuitInputParser) Parse(public, private []byte) (frontend.Circuit, error) {
	var pub publicInput
	if err := json.Unmarshal(public, &pub); err != nil {
		return nil, fmt.Errorf("invalid public input: %w", err)
	}
	digest, err := hex.DecodeString(pub.Digest)
	if err != nil {
		return nil, fmt.Errorf("invalid digest hex: %w", err)
	}
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	var priv privateInput
	if err := json.Unmarshal(private, &priv); err != nil {
		return nil, fmt.Errorf("invalid private input: %w", err)
	}

	assignment := &Circuit{
		Preimage: make([]uints.U8, p.PreimageBytes),
	}
	copy(assignment.Digest[:], uints.NewU8Array(digest))

	if priv.Preimage != "" {
		preimage, err := hex.DecodeString(priv.Preimage)
		if err != nil {
			return nil, fmt.Errorf("invalid preimage hex: %w", err)
		}
		if len(preimage) != p.PreimageBytes {
			return nil, fmt.Errorf("preimage must be %d bytes, got %d", p.PreimageBytes, len(preimage))
		}
		assignment.Preimage = uints.NewU8Array(preimage)
	}

	return assignment, nil
}
