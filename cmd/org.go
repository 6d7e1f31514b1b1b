package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-orgs/internal/client"
	"github.com/naka-gawa/github-orgs/internal/usecase"
)

func newOrgCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "org NAME...",
		Short: "Prints a JSON summary of one or more organizations",
		Long: `Fetches https://api.github.com/orgs/NAME for every NAME concurrently and
prints the summaries as a JSON array sorted by name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// One client per organization so that each memo cell stays
			// owned by a single goroutine.
			collector := usecase.NewCollector(func(org string) usecase.OrgSource {
				return client.New(org, a.fetcher, client.WithLogger(a.logger))
			}, a.logger)

			summaries, err := collector.Collect(cmd.Context(), args)
			if err != nil {
				return err
			}

			jsonData, err := json.MarshalIndent(summaries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal results to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
}
