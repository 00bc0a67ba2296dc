package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/codec"
)

var exportCmd = &cobra.Command{
	Use:   "export [directory]",
	Short: "Write a backup file",
	Long:  "Export the entire dataset to a dated JSON backup file in the given directory (default: current directory).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	data, filename, err := codec.ExportFile(a.store.Snapshot())
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
