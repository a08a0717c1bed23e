package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/ebinvoice/internal/inspect"
)

// ValidationResult is the per-file outcome reported by the validate command.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Validate generated invoice documents",
	Long: `Validate one or more generated XML documents for structural
completeness.

Checks performed:
  - Document is well-formed XML rooted at Invoice
  - ebInterface 6.1 namespace present
  - Required attributes (GeneratingSystem, DocumentType, InvoiceCurrency)
  - Required elements (InvoiceNumber through PayableAmount)

Examples:
  ebinvoice validate invoice.xml
  ebinvoice validate out/*.xml -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, file := range args {
		result := &ValidationResult{File: file, Valid: true}

		data, err := os.ReadFile(file)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read file: %v", err))
		} else {
			r := inspect.Validate(data)
			result.Valid = r.Valid
			result.Errors = r.Errors
		}

		if !result.Valid {
			allValid = false
		}
		results = append(results, result)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
				continue
			}
			fmt.Printf("✗ %s: INVALID\n", r.File)
			for _, e := range r.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}
