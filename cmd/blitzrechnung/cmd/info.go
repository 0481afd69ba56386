package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crylonblue/blitzrechnung/internal/artifact"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about invoice artifacts",
	Long: `Display information about generated invoice artifacts (PDF/XML)
without rendering them.

Shows:
  - Detected format (PDF, XML)
  - MIME type and size
  - Page count for PDFs

Examples:
  blitzrechnung info invoice.pdf
  blitzrechnung info *.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	infos := make([]fileInfo, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		infos = append(infos, fileInfo{
			File: file,
			Info: artifact.Inspect(data),
		})
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	for _, fi := range infos {
		fmt.Printf("File: %s\n", fi.File)
		fmt.Printf("  Format: %s\n", fi.Info.Name)
		fmt.Printf("  MIME type: %s\n", fi.Info.MimeType)
		fmt.Printf("  Size: %d bytes\n", fi.Info.Size)
		if fi.Info.Pages > 0 {
			fmt.Printf("  Pages: %d\n", fi.Info.Pages)
		}
		fmt.Println()
	}
	return nil
}

// fileInfo pairs a file path with its inspection result
type fileInfo struct {
	File string `json:"file"`
	artifact.Info
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}
			files = append(files, arg)
			continue
		}

		files = append(files, matches...)
	}

	return files, nil
}
