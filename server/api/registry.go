package api

import (
	"fmt"
	"path/filepath"

	"github.com/zkhash/sha3-zk/common"
)

// CircuitRegistry stores compiled circuits by name
type CircuitRegistry struct {
	Circuits map[string]*Circuit
}

// NewCircuitRegistry creates a new registry
func NewCircuitRegistry() *CircuitRegistry {
	return &CircuitRegistry{
		Circuits: make(map[string]*Circuit),
	}
}

// LoadAll loads every circuit in the list from its setup files.
func (cr *CircuitRegistry) LoadAll() error {
	for _, ci := range CircuitList {
		if err := cr.LoadCircuit(ci); err != nil {
			return err
		}
	}
	return nil
}

// LoadCircuit loads one circuit's setup files and registers it.
func (cr *CircuitRegistry) LoadCircuit(ci CircuitInfo) error {
	csPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.ccs", ci.Name, ci.Version))
	pkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.pk", ci.Name, ci.Version))
	vkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.vk", ci.Name, ci.Version))

	cs, pk, vk, err := common.LoadSetup(csPath, pkPath, vkPath)
	if err != nil {
		return fmt.Errorf("failed to load the circuit: %w", err)
	}

	return cr.Register(ci.Name, &Circuit{
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		InputParser:  ci.InputParser,
	})
}

// Get returns a circuit by name
func (cr *CircuitRegistry) Get(name string) (*Circuit, error) {
	if c, ok := cr.Circuits[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("circuit %s not found", name)
}

// Register registers a new circuit by user-defined name
func (cr *CircuitRegistry) Register(name string, circuit *Circuit) error {
	if _, ok := cr.Circuits[name]; ok {
		return fmt.Errorf("circuit with name %s already exists", name)
	}
	cr.Circuits[name] = circuit
	return nil
}
