// Command tenk extracts structured financial data from SEC 10-K filings.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tenk "github.com/finwell/go-tenk"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tenk",
	Short: "Extract structured financial data from SEC 10-K filings",
	Long: `tenk parses a raw SEC annual-report filing (SGML/HTML) and emits
per-fiscal-year financial metrics, filing metadata, and an extraction
diagnostics trail.`,
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output JSON file path (default: stdout)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(versionCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract per-year financial metrics as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read filing: %w", err)
		}

		extraction, err := tenk.Extract(data)
		if err != nil {
			return err
		}

		if len(extraction.Records) == 0 {
			fmt.Fprintln(os.Stderr, "Warning: no statement tables classified; structured data unavailable")
		}

		out, err := json.MarshalIndent(extraction, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d year records to %s\n", len(extraction.Records), outputPath)
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "Emit the filing's cleaned plain text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read filing: %w", err)
		}

		text, err := tenk.ExtractPlainText(data)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tenk %s (%s)\n", version, commit)
	},
}
