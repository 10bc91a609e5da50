package common_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"
	"golang.org/x/crypto/sha3"

	"github.com/zkhash/sha3-zk/common"
)

type sha3WrapperCircuit struct {
	Payload []uints.U8
	Digest  [32]uints.U8 `gnark:",public"`
}

func (c *sha3WrapperCircuit) Define(api frontend.API) error {
	digest, err := common.SHA3(api, c.Payload)
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

func TestSHA3Wrapper(t *testing.T) {
	assert := test.NewAssert(t)

	payload := []byte("wrapper payload")
	digest := sha3.Sum256(payload)

	circuit := &sha3WrapperCircuit{Payload: make([]uints.U8, len(payload))}
	witness := &sha3WrapperCircuit{Payload: common.BytesToU8Array(payload)}
	copy(witness.Digest[:], common.BytesToU8Array(digest[:]))

	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}
