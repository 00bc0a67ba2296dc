package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/codec"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Print a sync code for another device",
	Long:  "Encode the entire dataset as a portable text code. Paste it into 'jobtrack sync-import' on another device to copy everything over.",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	code, err := codec.Encode(a.store.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, code)
	return nil
}
