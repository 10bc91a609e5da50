package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark/std/math/uints"
)

// Helper function to convert a string to []uints.U8
func StringToU8Array(s string) []uints.U8 {
	return uints.NewU8Array([]byte(s))
}

// Helper function to convert bytes to []uints.U8
func BytesToU8Array(b []byte) []uints.U8 {
	return uints.NewU8Array(b)
}

// HexToU8Array decodes a hex string into constant byte wires.
func HexToU8Array(s string) ([]uints.U8, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return uints.NewU8Array(b), nil
}

// GenerateRandomBytes returns cryptographically secure random bytes
func GenerateRandomBytes(size int) ([]byte, error) {
	randomBytes := make([]byte, size)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return nil, err
	}
	return randomBytes, nil
}
