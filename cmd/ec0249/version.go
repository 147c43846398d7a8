package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of ec0249",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ec0249 %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
