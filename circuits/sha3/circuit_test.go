package zksha3_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/uints"
	"golang.org/x/crypto/sha3"

	zksha3 "github.com/zkhash/sha3-zk/circuits/sha3"
)

// Full prove/verify cycle over the preimage circuit. This runs the groth16
// setup, so it is slow.
func TestCircuitProveVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping groth16 setup in short mode")
	}

	preimage := []byte("abc")
	digest := sha3.Sum256(preimage)

	fmt.Println("\n--- Compiling Circuit ---")
	startCompile := time.Now()
	template := &zksha3.Circuit{
		Preimage: make([]uints.U8, len(preimage)),
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, template)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Printf("✓ Circuit compiled: %d constraints (took %v)\n", ccs.GetNbConstraints(), time.Since(startCompile))

	fmt.Println("\n--- Running Setup ---")
	startSetup := time.Now()
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Printf("✓ Setup done (took %v)\n", time.Since(startSetup))

	assignment := &zksha3.Circuit{
		Preimage: uints.NewU8Array(preimage),
	}
	copy(assignment.Digest[:], uints.NewU8Array(digest[:]))

	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatal(err)
	}

	fmt.Println("\n--- Generating Proof ---")
	startProve := time.Now()
	proof, err := groth16.Prove(ccs, pk, witness)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Printf("✓ Proof generated (took %v)\n", time.Since(startProve))

	publicWitness, err := witness.Public()
	if err != nil {
		t.Fatal(err)
	}

	fmt.Println("\n--- Verifying Proof ---")
	startVerify := time.Now()
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		t.Fatal("verification failed: " + err.Error())
	}
	fmt.Printf("✅ Proof verified (took %v)\n", time.Since(startVerify))
}

func TestCircuitInputParser(t *testing.T) {
	preimage := []byte("input parser test preimage bytes")
	digest := sha3.Sum256(preimage)

	parser := &zksha3.CircuitInputParser{PreimageBytes: len(preimage)}

	pub, _ := json.Marshal(map[string]string{"digest": hex.EncodeToString(digest[:])})
	priv, _ := json.Marshal(map[string]string{"preimage": hex.EncodeToString(preimage)})

	assignment, err := parser.Parse(pub, priv)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := assignment.(*zksha3.Circuit)
	if !ok {
		t.Fatalf("unexpected assignment type %T", assignment)
	}
	if len(c.Preimage) != len(preimage) {
		t.Fatalf("preimage length %d, want %d", len(c.Preimage), len(preimage))
	}

	// public-only parse for verification
	if _, err := parser.Parse(pub, []byte("{}")); err != nil {
		t.Fatal(err)
	}

	// malformed inputs
	if _, err := parser.Parse([]byte(`{"digest":"zz"}`), priv); err == nil {
		t.Fatal("expected error for invalid digest hex")
	}
	if _, err := parser.Parse([]byte(`{"digest":"00"}`), priv); err == nil {
		t.Fatal("expected error for short digest")
	}
	if _, err := parser.Parse(pub, []byte(`{"preimage":"00"}`)); err == nil {
		t.Fatal("expected error for wrong preimage length")
	}
}
