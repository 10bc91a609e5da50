package api

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
)

// Circuit with loaded constraint system and proving and verifying keys
type Circuit struct {
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	InputParser  InputParser
}

// InputParser converts raw request input to a circuit assignment
type InputParser interface {
	Parse(publicInput, privateInput []byte) (frontend.Circuit, error)
}

// PublicCircuit carries only what verification needs
type PublicCircuit struct {
	CS           constraint.ConstraintSystem
	VerifyingKey groth16.VerifyingKey
	InputParser  InputParser
}

func (c Circuit) Public() PublicCircuit {
	return PublicCircuit{
		CS:           c.CS,
		InputParser:  c.InputParser,
		VerifyingKey: c.VerifyingKey,
	}
}

// Prove generates a serialized groth16 proof for the assignment.
func (c Circuit) Prove(assignment frontend.Circuit) ([]byte, error) {
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(c.CS, c.ProvingKey, witness)
	if err != nil {
		return nil, fmt.Errorf("proof creation failed: %w", err)
	}

	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, fmt.Errorf("proof serialization failed: %w", err)
	}
	return proofBuf.Bytes(), nil
}

// Verify verifies a proof against the public part of the assignment.
func (c PublicCircuit) Verify(assignment frontend.Circuit, proof groth16.Proof) error {
	pw, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("witness creation failed: %w", err)
	}

	if err := groth16.Verify(proof, c.VerifyingKey, pw); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	return nil
}

// ProveWithJSON generates a proof from JSON inputs
func (c *Circuit) ProveWithJSON(publicInput, privateInput []byte) ([]byte, error) {
	assignment, err := c.InputParser.Parse(publicInput, privateInput)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inputs: %w", err)
	}
	return c.Prove(assignment)
}

// VerifyWithJSON verifies a proof using JSON public input
func (c PublicCircuit) VerifyWithJSON(publicInput, proofBytes []byte) error {
	// Parse only public input (pass empty private input)
	assignment, err := c.InputParser.Parse(publicInput, []byte("{}"))
	if err != nil {
		return fmt.Errorf("failed to parse public input: %w", err)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("failed to parse the proof: %w", err)
	}

	return c.Verify(assignment, proof)
}
