package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madfam-io/ec0249/internal/extract"
	"github.com/madfam-io/ec0249/internal/index"
	"github.com/madfam-io/ec0249/internal/report"
	"github.com/madfam-io/ec0249/internal/scan"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Extract text from the reference PDFs and write the JSON report",
	Long: `Analyze scans the input directory for *.pdf files, extracts the text of
every page, prints a per-file summary, and writes the full results as a JSON
report beside the input directory. Extraction failures are recorded in the
report and do not stop the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if len(args) == 1 {
			cfg.Analysis.InputDir = args[0]
		}
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Analysis.OutputPath = v
		}

		out := cmd.OutOrStdout()

		paths, err := scan.ListPDFs(cfg.Analysis.InputDir)
		if err != nil {
			return err
		}

		rep, _ := extract.ProcessBatch(extract.NewPDFExtractor(), paths, cfg.Analysis.PreviewLimit, out)

		outPath := cfg.Analysis.OutputPath
		if outPath == "" {
			outPath = report.OutputPath(cfg.Analysis.InputDir)
		}
		if err := report.Write(rep, outPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Detailed analysis saved to: %s\n", outPath)

		if yamlPath, _ := cmd.Flags().GetString("yaml"); yamlPath != "" {
			if err := report.WriteYAML(rep, yamlPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "YAML export saved to: %s\n", yamlPath)
		}

		if doIndex, _ := cmd.Flags().GetBool("index"); doIndex {
			store, err := index.NewStore(cfg.Index)
			if err != nil {
				return err
			}
			defer store.Close()
			if _, err := store.Ingest(cmd.Context(), rep, out); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("output", "", "JSON report path (default: <parent of input dir>/"+report.FileName+")")
	analyzeCmd.Flags().String("yaml", "", "also export the report as YAML to this path")
	analyzeCmd.Flags().Bool("index", false, "load extracted pages into the full-text index")

	rootCmd.AddCommand(analyzeCmd)
}
