package main

import (
	"github.com/spf13/cobra"

	"github.com/zkhash/sha3-zk/cmd/zkproof"
)

// Init the cmd
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sha3zk",
		Short: "SHA3-256 preimage proof server",
		Long:  `Tools and APIs for proving knowledge of SHA3-256 preimages in zero knowledge`,
	}

	rootCmd.AddCommand(
		zkproof.NewServeCmd(),
		zkproof.NewCompileCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}
