package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/orchestrator"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	var (
		force       bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "uninstall ID",
		Short: "Remove a package's installed files from the project",
		Long: `Delete the package's install target from the project. The registry
entry is kept; use remove to forget the package entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			root, err := resolveProject(projectPath)
			if err != nil {
				return err
			}
			orch, err := newOrchestrator(st)
			if err != nil {
				return err
			}

			result, err := orch.Uninstall(cmd.Context(), args[0], root, orchestrator.UninstallOptions{Force: force})
			if err != nil {
				return err
			}
			if !result.Removed {
				fmt.Printf("%s is not installed at %s; nothing to do.\n", args[0], result.Target)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the editor-running guard and the removal confirmation")
	cmd.Flags().StringVar(&projectPath, "project", "", "Project directory (defaults to the current directory)")

	return cmd
}
