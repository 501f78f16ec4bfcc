package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/orchestrator"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		force       bool
		preview     bool
		refetch     bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "install ID",
		Short: "Install a package into the project",
		Long: `Download, verify and install a package into the project's
Content/AssetLib or Plugins directory. --preview runs the full validation
path, including download and extraction, without changing the project.`,
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

			result, installErr := orch.Install(cmd.Context(), args[0], root, orchestrator.InstallOptions{
				Force:       force,
				PreviewOnly: preview,
				Refetch:     refetch,
			})
			if err := saveIfDirty(st, orch); err != nil {
				return err
			}
			if installErr != nil {
				return installErr
			}

			if result.Previewed {
				printPreview(result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Override the editor-running guard, overwrite confirmation and engine-version blocks")
	cmd.Flags().BoolVar(&preview, "preview", false, "Validate fully but change nothing in the project")
	cmd.Flags().BoolVar(&refetch, "refetch", false, "Ignore the cached archive and download fresh")
	cmd.Flags().StringVar(&projectPath, "project", "", "Project directory (defaults to the current directory)")

	return cmd
}

func printPreview(result *orchestrator.InstallResult) {
	fmt.Printf("Preview: would install to %s\n", result.Target)
	if result.Flattened {
		fmt.Println("Archive has a single wrapper directory; its contents would be flattened into the target.")
	}
	for _, entry := range result.Entries {
		fmt.Printf("  %s\n", entry)
	}
	fmt.Println("No project files were changed.")
}
