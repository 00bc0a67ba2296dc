package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career statistics",
	Long:  "Show totals and success rate derived from every tracked application, archived ones included. Deleted applications are gone from the numbers too.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	stats := a.store.Stats()
	fmt.Fprintf(os.Stdout, "Applications: %d\n", stats.TotalApplied)
	fmt.Fprintf(os.Stdout, "Rejections:   %d\n", stats.TotalRejections)
	fmt.Fprintf(os.Stdout, "Offers:       %d\n", stats.TotalOffers)
	fmt.Fprintf(os.Stdout, "Success rate: %d%%\n", stats.SuccessRate)
	return nil
}
