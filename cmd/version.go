package cmd

import (
	"fmt"

	"github.com/rnwolfe/deckstats/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print deckstats version",
	Run:   runVersion,
}

func runVersion(_ *cobra.Command, _ []string) {
	if versionShort {
		fmt.Println(version.Short())
		return
	}
	info := version.Get()
	fmt.Printf("deckstats %s\n", version.Full())
	fmt.Printf("  %s %s\n", info.GoVersion, info.Platform)
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
