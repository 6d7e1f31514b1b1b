package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-orgs/internal/client"
)

func newReposCmd(a *app) *cobra.Command {
	var license string
	reposCmd := &cobra.Command{
		Use:   "repos NAME",
		Short: "Lists the public repositories of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgClient := client.New(args[0], a.fetcher, client.WithLogger(a.logger))
			names, err := orgClient.PublicRepos(cmd.Context(), license)
			if err != nil {
				return fmt.Errorf("failed to list repositories of %s: %w", orgClient.Name(), err)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	reposCmd.Flags().StringVarP(&license, "license", "l", "", "Only list repositories with this license key (e.g. apache-2.0)")
	return reposCmd
}
