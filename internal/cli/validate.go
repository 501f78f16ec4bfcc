package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var (
		all         bool
		deep        bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [ID]",
		Short: "Check packages against the license policy",
		Long: `Classify packages against the known licenses and the active policy
mode. --deep additionally runs the full install path for the package,
including download, extraction and compatibility checks, without
changing the project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return fmt.Errorf("provide a package id or --all")
			}
			st, err := loadState()
			if err != nil {
				return err
			}

			var targets []*model.Package
			if all {
				targets = st.packages
			} else {
				pkg := registry.FindPackage(st.packages, args[0])
				if pkg == nil {
					return errors.Wrapf(errors.ErrPackageNotFound, "id %s", args[0])
				}
				targets = []*model.Package{pkg}
			}

			var violations int
			for _, pkg := range targets {
				status, decision, gateErr := policy.Gate(pkg, st.licenses, st.cfg.LicenseMode)
				fmt.Printf("%-24s %-15s %s\n", pkg.ID, status, decision)
				if gateErr != nil {
					violations++
				}
			}

			if deep {
				if all {
					return fmt.Errorf("--deep requires a single package id")
				}
				root, err := resolveProject(projectPath)
				if err != nil {
					return err
				}
				orch, err := newOrchestrator(st)
				if err != nil {
					return err
				}
				result, deepErr := orch.ValidateDeep(cmd.Context(), targets[0].ID, root)
				if saveErr := saveIfDirty(st, orch); saveErr != nil {
					return saveErr
				}
				if deepErr != nil {
					return deepErr
				}
				printPreview(result)
				return nil
			}

			if violations > 0 {
				return errors.Wrapf(errors.ErrLicenseViolation, "%d package(s) blocked under %s mode", violations, st.cfg.LicenseMode)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Validate every registered package")
	cmd.Flags().BoolVar(&deep, "deep", false, "Run the full install path without changing the project")
	cmd.Flags().StringVar(&projectPath, "project", "", "Project directory (defaults to the current directory, --deep only)")

	return cmd
}
