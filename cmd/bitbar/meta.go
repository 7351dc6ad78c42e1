package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/manifold/bitbar/pkg/metadata"
)

var manifestPath string

// `bitbar meta` command
func metaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta <plugin-binary>",
		Short: "Embeds plugin metadata into a binary",
		Long:  "Reads plugin metadata from a TOML manifest and encodes it into the binary's com.ameba.SwiftBar extended attribute.",
		Args:  cobra.ExactArgs(1),
		Run:   runMeta,
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "bitbar.toml", "path to the plugin manifest")
	cmd.AddCommand(metaShowCmd())
	return cmd
}

// `bitbar meta show` command
func metaShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <plugin-binary>",
		Short: "Prints the metadata embedded in a binary",
		Long:  "Prints the metadata embedded in a binary.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			block, err := metadata.Get(args[0])
			fatal(err)
			os.Stdout.Write(block)
		},
	}
}

func runMeta(cmd *cobra.Command, args []string) {
	m, err := metadata.Load(afero.NewOsFs(), manifestPath)
	fatal(err)
	fatal(metadata.Set(args[0], m))
	fmt.Printf("embedded %s into %s\n", manifestPath, args[0])
}
