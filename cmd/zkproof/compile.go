package zkproof

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/zkhash/sha3-zk/server/api"
)

type compileConfig struct {
	outputDir string
	circuits  []string
	curve     string
	force     bool
}

func NewCompileCmd() *cobra.Command {
	cfg := &compileConfig{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile circuits and generate setup files",
		Long:  `Compile the SHA3-256 preimage circuits and generate constraint systems, proving keys, and verification keys. Each circuit holds multiple Keccak-f permutations, so compiling all of them takes a while. The list of circuits lives in server/api/list.go`,
		Example: `  # Compile all circuits
  sha3zk compile -o ./setup

  # Compile specific circuits
  sha3zk compile -o ./setup -c sha3-256-32,sha3-256-64
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.outputDir, "output", "o", "./setup", "Output directory for compiled circuits")
	cmd.Flags().StringSliceVarP(&cfg.circuits, "circuits", "c", []string{}, "Specific circuits to compile (comma-separated, empty = all)")
	cmd.Flags().StringVar(&cfg.curve, "curve", "bn254", "Elliptic curve (bn254)")
	cmd.Flags().BoolVarP(&cfg.force, "force", "f", false, "Overwrite existing files")

	return cmd
}

func runCompile(cfg *compileConfig) error {
	if err := os.MkdirAll(cfg.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	circuitsToCompile := cfg.circuits
	if len(circuitsToCompile) == 0 {
		for name := range api.CircuitList {
			circuitsToCompile = append(circuitsToCompile, name)
		}
	}

	fmt.Printf("\n==== Compiling %d circuits to %s ====\n", len(circuitsToCompile), cfg.outputDir)

	for _, name := range circuitsToCompile {
		info, ok := api.CircuitList[name]
		if !ok {
			fmt.Printf("Circuit %s not found, skipping\n", name)
			continue
		}

		if !cfg.force && setupExists(cfg.outputDir, info) {
			fmt.Printf("%s already exists, skipping (use --force to overwrite)\n", name)
			continue
		}

		start := time.Now()
		fmt.Printf("Compiling %s...\n", name)

		info.Dir = cfg.outputDir
		if err := info.Compile(); err != nil {
			fmt.Printf("[X] Failed to compile %s: %v\n", name, err)
			continue
		}

		fmt.Printf("[OK] Compiled %s in %s\n", name, time.Since(start).Round(time.Second))
	}

	fmt.Println("\n==== Compilation complete ====")
	return nil
}

func setupExists(dir string, ci api.CircuitInfo) bool {
	for _, ext := range []string{"ccs", "pk", "vk"} {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.%s", ci.Name, ci.Version, ext))
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}
