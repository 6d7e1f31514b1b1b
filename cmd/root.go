// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-orgs/internal/config"
	"github.com/naka-gawa/github-orgs/internal/gateway"
)

// newFetcher builds the gateway used by every command. Tests replace it.
var newFetcher = func(cfg *config.Config) (gateway.Fetcher, error) {
	return gateway.NewJSONFetcher(gateway.Options{
		Token:           cfg.Token,
		WaitOnRateLimit: cfg.WaitOnRateLimit,
		UserAgent:       cfg.UserAgent,
	})
}

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	verbose    bool
	configPath string

	logger  *log.Logger
	fetcher gateway.Fetcher
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "github-orgs",
		Short: "A CLI tool to inspect GitHub organizations.",
		Long: `github-orgs reads public metadata about GitHub organizations and their
repositories from the GitHub REST API and prints it as JSON or plain text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	// Persistent flags are available to all commands.
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/github-orgs/config.yml)")

	rootCmd.AddCommand(newOrgCmd(a))
	rootCmd.AddCommand(newReposCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	return rootCmd
}

func (a *app) setup(logOutput io.Writer) error {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = newLogger(logOutput, level)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Configuration loaded", "authenticated", cfg.Token != "", "wait_on_rate_limit", cfg.WaitOnRateLimit)

	a.fetcher, err = newFetcher(cfg)
	if err != nil {
		return err
	}
	return nil
}
