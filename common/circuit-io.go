package common

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// SetupAndSave compiles a circuit, runs the groth16 setup and writes the
// constraint system, proving key and verifying key to the given paths.
// SHA3 circuits are large (a single Keccak-f permutation is ~190k
// constraints in R1CS), so this is meant to run once per circuit shape.
func SetupAndSave(circuitTemplate frontend.Circuit, ccsPath, pkPath, vkPath string) error {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuitTemplate)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	fmt.Printf("✓ Circuit compiled: %d constraints\n", ccs.GetNbConstraints())

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	if err := writeTo(ccsPath, ccs); err != nil {
		return err
	}
	if err := writeTo(pkPath, pk); err != nil {
		return err
	}
	if err := writeTo(vkPath, vk); err != nil {
		return err
	}

	fmt.Println("✓ Setup completed and saved!")
	return nil
}

func writeTo(path string, v io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := v.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadSetup loads a pre-compiled circuit and its keys.
func LoadSetup(ccsPath, pkPath, vkPath string) (constraint.ConstraintSystem, groth16.ProvingKey, groth16.VerifyingKey, error) {
	ccsFile, err := os.Open(ccsPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer ccsFile.Close()

	ccs := groth16.NewCS(ecc.BN254)
	if _, err := ccs.ReadFrom(ccsFile); err != nil {
		return nil, nil, nil, err
	}

	pkFile, err := os.Open(pkPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer pkFile.Close()

	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(pkFile); err != nil {
		return nil, nil, nil, err
	}

	vkFile, err := os.Open(vkPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer vkFile.Close()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(vkFile); err != nil {
		return nil, nil, nil, err
	}

	return ccs, pk, vk, nil
}
