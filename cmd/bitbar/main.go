package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bitbar",
	Short: "Companion tool for Go menu-bar plugins",
	Long:  "Companion tool for Go menu-bar plugins.",
}

func init() {
	rootCmd.AddCommand(metaCmd())
}

func main() {
	rootCmd.Execute()
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
