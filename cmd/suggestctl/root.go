package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suggestctl",
	Short: "Developer tool for the task suggestion engine",
	Long: `suggestctl exercises the suggestion engine from the command line.

segment, resolve and categories run offline against the embedded registry.
suggest loads config.yaml and calls the embedding API like the server does.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(calendarAuthCmd)
}

func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	c.Printf("%s ", symbol)
	color.New(color.Reset).Println(message)
}
