package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/retracehq/retrace/internal/core/domain"
)

var (
	domainsLookbackDays int
	domainsMax          int
	domainsJSON         bool
)

type domainJSON struct {
	Hostname string `json:"hostname"`
	Count    int    `json:"count"`
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the most visited domains in recent history",
	Long: `Scans recent browsing history and prints a frequency-ranked list of
normalized domains, the same list the interactive UI offers for its
domain filter.`,
	RunE: runDomains,
}

func init() {
	domainsCmd.Flags().IntVar(&domainsLookbackDays, "days", 0, "days of history to scan (default from config)")
	domainsCmd.Flags().IntVarP(&domainsMax, "max", "n", 0, "maximum domains to list (default from config)")
	domainsCmd.Flags().BoolVar(&domainsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, _ []string) error {
	if domainService == nil {
		return errors.New("domain service not configured")
	}

	opts := domain.DomainSuggestionOptions{
		Lookback:        time.Duration(cfg.Domains.LookbackDays) * 24 * time.Hour,
		MaxHistoryItems: cfg.Domains.MaxHistoryItems,
		MaxDomains:      cfg.Domains.MaxDomains,
	}
	if domainsLookbackDays > 0 {
		opts.Lookback = time.Duration(domainsLookbackDays) * 24 * time.Hour
	}
	if domainsMax > 0 {
		opts.MaxDomains = domainsMax
	}

	ranked, err := domainService.TopDomains(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("ranking domains: %w", err)
	}

	if domainsJSON {
		out := make([]domainJSON, len(ranked))
		for i, d := range ranked {
			out[i] = domainJSON{Hostname: d.Hostname, Count: d.Count}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal domains: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(ranked) == 0 {
		cmd.Println("No recent history.")
		return nil
	}
	for _, d := range ranked {
		cmd.Printf("%6d  %s\n", d.Count, d.Hostname)
	}
	return nil
}
