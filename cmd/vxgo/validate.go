package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/vxgo/graphdesc"
	"github.com/hupe1980/vxgo/registry"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph-file>",
	Short: "Decode and validate a serialized graph description",
	Args:  cobra.ExactArgs(1),
	RunE:  validateGraph,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateGraph(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	g, err := graphdesc.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	slog.Info("graph decoded", "nodes", g.NodeCount(), "data", len(g.Data))

	if err := g.Validate(registry.New()); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	fmt.Printf("%s: valid (%d nodes, %d data objects)\n", args[0], g.NodeCount(), len(g.Data))
	fmt.Println("kernels:")
	for _, id := range g.Kernels() {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
