package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crylonblue/blitzrechnung/internal/compliance"
	"github.com/crylonblue/blitzrechnung/internal/model"
)

var (
	renderCompanyFile string
	renderLogoURL     string
	renderOutput      string
)

var renderCmd = &cobra.Command{
	Use:   "render [invoice.json]",
	Short: "Map a raw invoice record to its renderable form",
	Long: `Read a raw invoice record (JSON) and emit the canonical renderable
invoice consumed by the PDF and XML renderers.

Party snapshots embedded in the record are used as-is; self parties
resolve against the company record when one is supplied.

Examples:
  blitzrechnung render invoice.json
  blitzrechnung render invoice.json --company company.json
  blitzrechnung render invoice.json -o renderable.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderCompanyFile, "company", "", "Company master data JSON file (for self parties)")
	renderCmd.Flags().StringVar(&renderLogoURL, "logo-url", "", "Logo URL to embed")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read invoice file: %w", err)
	}

	var invoice model.RawInvoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return model.NewValidationError("invoice", args[0], "json", err.Error())
	}

	var company *model.Company
	if renderCompanyFile != "" {
		company, err = readCompanyFile(renderCompanyFile)
		if err != nil {
			return err
		}
	}

	printVerbose("mapping invoice %s (status=%s)\n", invoice.ID, invoice.Status)

	mapper := compliance.NewMapper(company)
	renderable := mapper.MapToRenderable(&invoice, nil, nil, renderLogoURL)

	out := os.Stdout
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(renderable)
}

func readCompanyFile(path string) (*model.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read company file: %w", err)
	}

	var company model.Company
	if err := json.Unmarshal(data, &company); err != nil {
		return nil, model.NewValidationError("company", path, "json", err.Error())
	}
	return &company, nil
}
