package main

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/vxgo/manifest"
	"github.com/hupe1980/vxgo/registry"
	"github.com/spf13/cobra"
)

var snapshotDir string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the registry contents as a versioned manifest",
	Long: `Captures the standard kernel table as a manifest file under the
given directory. Each snapshot gets a fresh MANIFEST-NNNNNN file and
the CURRENT pointer is rotated atomically.`,
	RunE: saveSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotDir, "dir", ".", "Manifest directory")
	rootCmd.AddCommand(snapshotCmd)
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	m := reg.Snapshot()

	store := manifest.NewStore(snapshotDir)
	if err := store.Save(m); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}

	slog.Info("manifest saved", "dir", snapshotDir, "kernels", len(m.Kernels))
	fmt.Printf("saved manifest with %d kernels to %s\n", len(m.Kernels), snapshotDir)
	return nil
}
