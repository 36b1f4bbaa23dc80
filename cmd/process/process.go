// Package process handles the batch image processing command
package process

import (
	"github.com/spf13/cobra"

	"snaptransact/cmd/root"
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process images into a transactions CSV",
	Long: `Process a single image or every supported image in a directory,
extract transaction records from the recognized text and write them to CSV.`,
	Run: processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file or directory is required (use -i)")
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = "transactions.csv"
	}

	root.Log.Infof("Input path: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", output)

	processor := root.NewProcessor()
	result, err := processor.ProcessToCSV(root.SharedFlags.Input, output)
	if err != nil {
		root.Log.Fatalf("Processing failed: %v", err)
	}

	root.Log.Infof("Processed %d image(s), extracted %d transaction(s), %d failed",
		result.ProcessedCount, result.TransactionCount, result.FailedCount)
}
