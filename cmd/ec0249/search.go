package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madfam-io/ec0249/internal/index"
	"github.com/madfam-io/ec0249/internal/report"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Query the full-text index of extracted page content",
	Long: `Search runs an FTS5 query over the pages indexed by "analyze --index".
Hits are ranked by relevance and show the source file, page number, and a
content preview. With --list, the indexed documents are listed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
			cfg.Index.MaxResults = v
		}

		store, err := index.NewStore(cfg.Index)
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		asJSON, _ := cmd.Flags().GetBool("json")

		if list, _ := cmd.Flags().GetBool("list"); list {
			docs, err := store.Documents(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out, docs)
			}
			for _, d := range docs {
				if d.Error != "" {
					fmt.Fprintf(out, "%s: %s\n", d.Filename, d.Error)
					continue
				}
				fmt.Fprintf(out, "%s: %d pages\n", d.Filename, d.PageCount)
			}
			return nil
		}

		fileFilter, _ := cmd.Flags().GetString("file")
		hits, err := store.Search(cmd.Context(), index.QueryOptions{
			Query:    strings.Join(args, " "),
			Filename: fileFilter,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(out, hits)
		}
		if len(hits) == 0 {
			fmt.Fprintln(out, "no matches")
			return nil
		}
		for _, h := range hits {
			fmt.Fprintf(out, "%s p.%d: %s\n", h.Filename, h.Page, report.Preview(h.Content, cfg.Analysis.PreviewLimit))
		}
		return nil
	},
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func init() {
	searchCmd.Flags().String("file", "", "restrict hits to one filename")
	searchCmd.Flags().Int("max-results", 0, "maximum number of hits (default from config)")
	searchCmd.Flags().Bool("json", false, "emit results as JSON")
	searchCmd.Flags().Bool("list", false, "list indexed documents instead of searching")

	rootCmd.AddCommand(searchCmd)
}
