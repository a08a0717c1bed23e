package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ebinvoice",
	Short: "Generate ebInterface 6.1 e-invoices",
	Long: `ebinvoice is a CLI tool for generating ebInterface 6.1 invoice XML
from a JSON invoice description.

Examples:
  # Generate an invoice document
  ebinvoice generate invoice.json -o invoice.xml

  # Validate a generated document
  ebinvoice validate invoice.xml

  # Summarize a generated document
  ebinvoice info invoice.xml

  # Run the HTTP API
  ebinvoice serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
