package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/ebinvoice/internal/inspect"
)

var infoCmd = &cobra.Command{
	Use:   "info <invoice.xml>",
	Short: "Summarize a generated invoice document",
	Long: `Parse a generated XML document and print its header fields, line
item count, tax groups and totals.

Examples:
  ebinvoice info invoice.xml
  ebinvoice info invoice.xml -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	summary, err := inspect.Inspect(data)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DocumentType\t%s\n", summary.DocumentType)
	fmt.Fprintf(w, "GeneratingSystem\t%s\n", summary.GeneratingSystem)
	fmt.Fprintf(w, "InvoiceNumber\t%s\n", summary.InvoiceNumber)
	fmt.Fprintf(w, "InvoiceDate\t%s\n", summary.InvoiceDate)
	fmt.Fprintf(w, "Currency\t%s\n", summary.Currency)
	fmt.Fprintf(w, "LineItems\t%d\n", summary.LineItems)
	fmt.Fprintf(w, "TaxGroups\t%d\n", summary.TaxGroups)
	fmt.Fprintf(w, "TotalGrossAmount\t%s\n", summary.TotalGrossAmount)
	fmt.Fprintf(w, "PayableAmount\t%s\n", summary.PayableAmount)
	return w.Flush()
}
