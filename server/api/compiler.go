package api

import (
	"fmt"
	"path/filepath"

	"github.com/consensys/gnark/frontend"

	"github.com/zkhash/sha3-zk/common"
)

// CircuitInfo describes one registered circuit shape.
type CircuitInfo struct {
	Circuit     frontend.Circuit
	Dir         string
	Name        string
	Version     uint
	Description string
	InputParser InputParser
}

// Compile compiles the circuit and stores the constraint system and keys
// under Dir.
func (ci CircuitInfo) Compile() error {
	csPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.ccs", ci.Name, ci.Version))
	pkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.pk", ci.Name, ci.Version))
	vkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.vk", ci.Name, ci.Version))

	return common.SetupAndSave(ci.Circuit, csPath, pkPath, vkPath)
}

// CompileAll compiles every circuit in the list into dir.
func CompileAll(dir string) error {
	for _, ci := range CircuitList {
		ci.Dir = dir
		if err := ci.Compile(); err != nil {
			return fmt.Errorf("compiling %s: %w", ci.Name, err)
		}
	}
	return nil
}
