package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rigup version",
	Long:  `Print the rigup version derived from build metadata.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rigup %s\n", buildinfo.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
