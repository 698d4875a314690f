package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hupe1980/vxgo/blobstore"
	"github.com/spf13/cobra"
)

var (
	pushRoot        string
	pushConcurrency int64
	pushRateBytes   int64
)

var pushCmd = &cobra.Command{
	Use:   "push <file>...",
	Short: "Upload artifacts to a blob store",
	Long: `Uploads graph descriptions or other artifacts to the blob store
rooted at --root. Uploads run concurrently with optional byte-rate
throttling.`,
	Args: cobra.MinimumNArgs(1),
	RunE: pushArtifacts,
}

func init() {
	pushCmd.Flags().StringVar(&pushRoot, "root", ".vxgo", "Blob store root directory")
	pushCmd.Flags().Int64Var(&pushConcurrency, "concurrency", 4, "Concurrent uploads")
	pushCmd.Flags().Int64Var(&pushRateBytes, "rate", 0, "Upload rate limit in bytes/sec (0 = unlimited)")
	rootCmd.AddCommand(pushCmd)
}

func pushArtifacts(cmd *cobra.Command, args []string) error {
	store, err := blobstore.NewLocalStore(pushRoot)
	if err != nil {
		return err
	}

	blobs := make(map[string][]byte, len(args))
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("read %s: %w", arg, err)
		}
		blobs[filepath.Base(arg)] = data
	}

	uploader := blobstore.NewUploader(store, blobstore.UploaderConfig{
		Concurrency:     pushConcurrency,
		RateBytesPerSec: pushRateBytes,
	})
	if err := uploader.Upload(cmd.Context(), blobs); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	slog.Info("artifacts uploaded", "count", len(blobs), "root", pushRoot)
	fmt.Printf("uploaded %d artifacts to %s\n", len(blobs), pushRoot)
	return nil
}
