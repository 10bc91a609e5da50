package main

import (
	"fmt"
	"os"
)

// sha3zk - CLI tool and API service for SHA3-256 preimage proof
// generation and verification
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
