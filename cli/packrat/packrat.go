package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/internal/cli"
)

var (
	configPath string
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packrat",
		Short: "Install external asset packs and plugins into a project",
		Long: `packrat tracks external content packages in a registry, gates them
against a license policy, and installs them into the right place in a
project: content packs under Content/AssetLib, plugins under Plugins.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewAddCmd(),
		cli.NewRemoveCmd(),
		cli.NewListCmd(),
		cli.NewShowCmd(),
		cli.NewOpenCmd(),
		cli.NewInstallCmd(),
		cli.NewUninstallCmd(),
		cli.NewValidateCmd(),
		cli.NewAuditCmd(),
		cli.NewLicensesCmd(),
		cli.NewModeCmd(),
		cli.NewStatusCmd(),
		cli.NewCacheCmd(),
	)

	return cmd
}
