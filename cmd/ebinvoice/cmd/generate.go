package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/ebinvoice/internal/input"
)

var outputFile string

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Generate an invoice XML document from a JSON description",
	Long: `Generate an ebInterface 6.1 XML document from a JSON invoice
description.

The JSON document carries the invoice header, biller, recipient, line items
and optional payment method; amounts may be given as JSON numbers or strings
and keep their exact decimal value.

Examples:
  ebinvoice generate invoice.json
  ebinvoice generate invoice.json -o invoice.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write XML to file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var req input.Invoice
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	inv, err := req.Build()
	if err != nil {
		return err
	}

	printVerbose("assembling invoice %s with %d line items\n", inv.InvoiceNumber, len(inv.Details.Items))

	xml, err := inv.XMLString()
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(xml), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printVerbose("wrote %s\n", outputFile)
		return nil
	}

	fmt.Println(xml)
	return nil
}
