package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/extract"
	"github.com/kwalters/jobtrack/internal/types"
)

var compareOffersCmd = &cobra.Command{
	Use:   "compare-offers",
	Short: "Rank applications with Offer status",
	Long:  "Compare every application currently at Offer status and rank them with reasoning, pros, and cons. Needs at least two offers.",
	RunE:  runCompareOffers,
}

func init() {
	rootCmd.AddCommand(compareOffersCmd)
}

func runCompareOffers(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	var offers []extract.Offer
	for _, job := range a.store.Jobs() {
		if job.Status == types.StatusOffer && !job.IsArchived {
			offers = append(offers, extract.Offer{
				Title:       job.Title,
				Company:     job.Company,
				Description: job.Description,
			})
		}
	}
	if len(offers) < 2 {
		return fmt.Errorf("need at least two offers to compare, have %d", len(offers))
	}

	ctx := context.Background()
	svc, client, err := newExtractService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	rankings, err := svc.CompareOffers(ctx, offers)
	if err != nil {
		return err
	}

	for _, r := range rankings {
		fmt.Fprintf(os.Stdout, "#%d %s at %s\n", r.Rank, r.Title, r.Company)
		fmt.Fprintf(os.Stdout, "   %s\n", r.Why)
		if len(r.Pros) > 0 {
			fmt.Fprintf(os.Stdout, "   Pros: %s\n", strings.Join(r.Pros, "; "))
		}
		if len(r.Cons) > 0 {
			fmt.Fprintf(os.Stdout, "   Cons: %s\n", strings.Join(r.Cons, "; "))
		}
	}
	return nil
}
