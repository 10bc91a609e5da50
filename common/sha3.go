package common

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	zksha3 "github.com/zkhash/sha3-zk/circuits/sha3"
)

// SHA3 computes the SHA3-256 digest of a byte payload inside the circuit.
func SHA3(api frontend.API, payload []uints.U8) ([]uints.U8, error) {
	return zksha3.Sum256Bytes(api, payload)
}

// Keccak256 computes the legacy (pre-standard padding) Keccak-256 digest.
func Keccak256(api frontend.API, payload []uints.U8) ([]uints.U8, error) {
	return zksha3.Keccak256Bytes(api, payload)
}
