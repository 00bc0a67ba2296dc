package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/codec"
)

var syncImportCmd = &cobra.Command{
	Use:   "sync-import [code]",
	Short: "Import a sync code from another device",
	Long:  "Decode a sync code and replace the entire local dataset with it. This is a wholesale overwrite, not a merge, so it asks for confirmation.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSyncImport,
}

func init() {
	rootCmd.AddCommand(syncImportCmd)
}

func runSyncImport(_ *cobra.Command, args []string) error {
	var code string
	if len(args) == 1 {
		code = args[0]
	} else {
		// Sync codes are long; reading from stdin avoids argv limits.
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read sync code from stdin: %w", err)
		}
		code = string(raw)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("sync code is empty")
	}

	snapshot, err := codec.Decode(code)
	if err != nil {
		return err
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.ReplaceAll(snapshot); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Imported %d applications\n", len(snapshot.Jobs))
	return nil
}
