package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/orchestrator"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/project"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	var (
		prune       bool
		dryRun      bool
		force       bool
		statusNames []string
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report installed packages with problematic licenses",
		Long: `List every registered package whose install target exists in the
project together with its license status. --prune removes the installed
files of packages whose status falls in the selected set; the registry
entries are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			root, err := resolveProject(projectPath)
			if err != nil {
				return err
			}

			statuses, err := parseStatuses(statusNames)
			if err != nil {
				return err
			}

			if !prune {
				return printAudit(st, root)
			}

			orch, err := newOrchestrator(st)
			if err != nil {
				return err
			}
			result, pruneErr := orch.Prune(cmd.Context(), root, orchestrator.PruneOptions{
				Statuses: statuses,
				DryRun:   dryRun,
				Force:    force,
			})
			if pruneErr != nil {
				return pruneErr
			}

			for _, item := range result.Candidates {
				switch {
				case item.Err != nil:
					fmt.Printf("%-24s %-15s FAILED: %v\n", item.ID, item.Status, item.Err)
				case dryRun:
					fmt.Printf("%-24s %-15s would remove %s\n", item.ID, item.Status, item.Target)
				default:
					fmt.Printf("%-24s %-15s removed %s\n", item.ID, item.Status, item.Target)
				}
			}
			if dryRun {
				fmt.Printf("%d candidate(s); nothing removed (dry run).\n", len(result.Candidates))
			} else {
				fmt.Printf("Removed %d of %d candidate(s).\n", result.Removed, len(result.Candidates))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", false, "Remove installed files of packages in the selected status set")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List prune candidates without removing anything")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the editor-running guard and the prune confirmation")
	cmd.Flags().StringSliceVar(&statusNames, "statuses", nil, "License statuses to prune (NON_COMMERCIAL, UNKNOWN_LICENSE, NO_LICENSE); default all non-OK")
	cmd.Flags().StringVar(&projectPath, "project", "", "Project directory (defaults to the current directory)")

	return cmd
}

func printAudit(st *appState, root string) error {
	var installed int
	for _, pkg := range st.packages {
		target := project.InstallTarget(pkg, root)
		if _, err := os.Stat(target); err != nil {
			continue
		}
		installed++
		status := policy.Classify(pkg, st.licenses)
		fmt.Printf("%-24s %-15s %s\n", pkg.ID, status, relOrAbs(root, target))
	}
	if installed == 0 {
		fmt.Println("No registered packages are installed in this project.")
	}
	return nil
}

func relOrAbs(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return target
	}
	return rel
}

func parseStatuses(names []string) ([]model.LicenseStatus, error) {
	if len(names) == 0 {
		return nil, nil
	}
	valid := map[string]model.LicenseStatus{
		string(model.StatusOK):            model.StatusOK,
		string(model.StatusNonCommercial): model.StatusNonCommercial,
		string(model.StatusUnknown):       model.StatusUnknown,
		string(model.StatusNoLicense):     model.StatusNoLicense,
	}
	statuses := make([]model.LicenseStatus, 0, len(names))
	for _, name := range names {
		status, ok := valid[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown license status %q", name)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
