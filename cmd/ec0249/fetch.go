package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/madfam-io/ec0249/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Download reference PDFs into the input directory",
	Long: `Fetch downloads one or more PDFs into the analysis input directory,
naming each after the last segment of its URL. Files already present are
skipped; individual download failures do not stop the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		inputDir := cfg.Analysis.InputDir
		if v, _ := cmd.Flags().GetString("input-dir"); v != "" {
			inputDir = v
		}

		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		opts := fetch.Options{
			UserAgent:  cfg.Fetch.UserAgent,
			MaxRetries: cfg.Fetch.MaxRetries,
			Delay:      cfg.Fetch.DownloadDelay,
		}

		result := fetch.FetchBatch(cmd.Context(), client, args, inputDir, opts, cmd.OutOrStdout())
		if result.HasFailures() {
			return fmt.Errorf("%d of %d downloads failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("input-dir", "", "destination directory (default from config)")

	rootCmd.AddCommand(fetchCmd)
}
