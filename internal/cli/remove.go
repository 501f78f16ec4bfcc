package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a package from the registry",
		Long: `Remove a package from the registry. This never deletes installed
files or remote storage; use uninstall for project files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}

			updated, removed := registry.RemovePackage(st.packages, args[0])
			if !removed {
				fmt.Printf("Package %s not found; registry unchanged.\n", args[0])
				return nil
			}
			if err := st.store.SavePackages(updated); err != nil {
				return err
			}
			logger.Successf("Removed %s from the registry", args[0])
			return nil
		},
	}
	return cmd
}
