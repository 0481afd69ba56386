package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crylonblue/blitzrechnung/internal/compliance"
)

var checkCmd = &cobra.Command{
	Use:   "check [company.json]",
	Short: "Check company master data for legal completeness",
	Long: `Validate a company record against the legal requirements for
issuing invoices.

Checks performed:
  - Non-blank company name
  - Full postal address (street, street number, zip, city, country)
  - At least one tax identifier (Steuernummer or USt-IdNr.)
  - IBAN present in bank details

An incomplete company must not be used as invoice seller.

Examples:
  blitzrechnung check company.json
  blitzrechnung check company.json --format table`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	company, err := readCompanyFile(args[0])
	if err != nil {
		return err
	}

	result := compliance.CheckCompleteness(company)

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		if result.Complete {
			fmt.Printf("✓ %s: complete\n", company.Name)
		} else {
			fmt.Printf("✗ %s: incomplete\n", company.Name)
			for _, field := range result.MissingFields {
				fmt.Printf("  - %s\n", field)
			}
		}
	}

	if !result.Complete {
		return fmt.Errorf("company data is incomplete")
	}
	return nil
}
