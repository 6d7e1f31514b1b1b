package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-orgs/internal/nested"
)

var errNotAnObject = errors.New("document is not a JSON object")

func newGetCmd(a *app) *cobra.Command {
	var path string
	getCmd := &cobra.Command{
		Use:   "get URL",
		Short: "Fetches a JSON document and prints it, or the value at --path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := a.fetcher.GetJSON(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if keys := nested.SplitPath(path); len(keys) > 0 {
				doc, ok := payload.(map[string]any)
				if !ok {
					return fmt.Errorf("%w: %T", errNotAnObject, payload)
				}
				payload, err = nested.Access(doc, keys...)
				if err != nil {
					return err
				}
			}

			jsonData, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	getCmd.Flags().StringVarP(&path, "path", "p", "", "Dotted key path to print instead of the whole document (e.g. license.key)")
	return getCmd
}
