// Package scan handles the single image inspection command
package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"snaptransact/cmd/root"
	"snaptransact/internal/fileutils"
	"snaptransact/internal/models"
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a single image and print the extracted transactions",
	Long: `Scan one image, extract transaction records from the recognized text
and print them to stdout without writing a CSV file.`,
	Run: scanFunc,
}

func scanFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		root.Log.Fatal("Input image file is required (use -i or pass it as an argument)")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("Input file does not exist: %s", input)
	}

	processor := root.NewProcessor()
	transactions, err := processor.ProcessSingleImage(input)
	if err != nil {
		root.Log.Fatalf("Failed to process image: %v", err)
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions found")
		return
	}
	for i, tx := range transactions {
		printTransaction(os.Stdout, i+1, tx)
	}
}

func printTransaction(w io.Writer, index int, tx models.Transaction) {
	row := tx.Row()
	fmt.Fprintf(w, "Transaction %d\n", index)
	fmt.Fprintf(w, "  Date:        %s\n", orDash(row.Date))
	fmt.Fprintf(w, "  Amount:      %s\n", orDash(row.Amount))
	fmt.Fprintf(w, "  Description: %s\n", orDash(row.Description))
	fmt.Fprintf(w, "  Reference:   %s\n", orDash(row.Reference))
	fmt.Fprintf(w, "  Category:    %s\n", orDash(row.Category))
	fmt.Fprintf(w, "  Confidence:  %s\n", orDash(row.Confidence))
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
