package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gdc-engine/internal/download"
	"github.com/pdiddy/gdc-engine/pkg/types"
)

var downloadCmd = &cobra.Command{
	Use:   "download [uuids...]",
	Short: "Download open-access files by UUID",
	Long: `Download fetches each file from the GDC data endpoint, one at a time,
streaming it to the target directory. File names come from the server; a
name that already exists locally is replaced by the UUID while keeping the
last extension segment(s). Failed files are reported and skipped.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().String("dir", "", "download directory (default: current directory)")
	downloadCmd.Flags().Int("keep-ext", 0, "extension segments kept on collision rename (default 1)")
	downloadCmd.Flags().Int("chunk-size", 0, "streaming chunk size in bytes (default 1024)")
	downloadCmd.Flags().String("manifest", "", "write a YAML manifest of the batch to this path")
	downloadCmd.Flags().Bool("plain", false, "plain text progress instead of progress bars")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more file UUIDs")
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("download.dir")
	}
	keepExt, _ := cmd.Flags().GetInt("keep-ext")
	if keepExt == 0 {
		keepExt = viper.GetInt("download.keep_extensions")
	}
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	if chunkSize == 0 {
		chunkSize = viper.GetInt("download.chunk_size")
	}
	manifestPath, _ := cmd.Flags().GetString("manifest")
	plain, _ := cmd.Flags().GetBool("plain")

	cfg := types.DownloadConfig{
		Dir:            dir,
		KeepExtensions: keepExt,
		ChunkSize:      chunkSize,
	}

	ids := make(map[string]string, len(args))
	for _, uuid := range args {
		ids[uuid] = uuid
	}

	var rep download.Reporter
	if plain {
		rep = &download.WriterReporter{W: os.Stdout}
	} else {
		rep = &download.BarReporter{W: os.Stderr}
	}

	client := newClient(cmd)
	result, err := download.FetchBatch(cmd.Context(), client, ids, cfg, rep)
	if err != nil {
		return err
	}

	fmt.Printf("\nBatch summary: %d downloaded, %d failed (total: %d)\n",
		len(result.Files), len(result.Failed), len(ids))

	if manifestPath != "" {
		m := download.NewManifest(dir, result)
		if err := download.WriteManifest(manifestPath, m); err != nil {
			return err
		}
		fmt.Printf("Wrote manifest to %s\n", manifestPath)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed to download", len(result.Failed))
	}
	return nil
}
