// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ec0249 CLI, which extracts
// and indexes the text content of the EC0249 reference PDF corpus.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madfam-io/ec0249/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ec0249 CLI.
var rootCmd = &cobra.Command{
	Use:   "ec0249",
	Short: "Content analysis for the EC0249 reference material corpus",
	Long: `ec0249 analyzes the PDF reference materials used for the EC0249
certification corpus. The analyze command extracts per-page text from every
PDF in the input directory, prints a per-file summary, and writes a JSON
report next to the directory. Extracted pages can additionally be loaded
into a local full-text index and queried with the search command; fetch
downloads new reference PDFs into the corpus.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ec0249.yaml or ~/.config/ec0249/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ec0249")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ec0249"))
		}
	}

	viper.SetEnvPrefix("EC0249")
	viper.AutomaticEnv()

	viper.SetDefault("analysis.input_dir", filepath.Join("reference", "raw"))
	viper.SetDefault("analysis.preview_limit", 200)
	viper.SetDefault("index.index_dir", filepath.Join("reference", "index"))
	viper.SetDefault("index.max_results", 20)
	viper.SetDefault("fetch.timeout", time.Minute)
	viper.SetDefault("fetch.user_agent", "ec0249/"+version)
	viper.SetDefault("fetch.download_delay", time.Second)
	viper.SetDefault("fetch.max_retries", 3)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper.
func loadConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Analysis: types.AnalysisConfig{
			InputDir:     viper.GetString("analysis.input_dir"),
			OutputPath:   viper.GetString("analysis.output_path"),
			PreviewLimit: viper.GetInt("analysis.preview_limit"),
		},
		Index: types.IndexConfig{
			IndexDir:   viper.GetString("index.index_dir"),
			MaxResults: viper.GetInt("index.max_results"),
		},
		Fetch: types.FetchConfig{
			Timeout:       viper.GetDuration("fetch.timeout"),
			UserAgent:     viper.GetString("fetch.user_agent"),
			DownloadDelay: viper.GetDuration("fetch.download_delay"),
			MaxRetries:    viper.GetInt("fetch.max_retries"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
