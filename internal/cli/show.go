package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show package details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			pkg := registry.FindPackage(st.packages, args[0])
			if pkg == nil {
				return errors.Wrapf(errors.ErrPackageNotFound, "id %s", args[0])
			}

			status := policy.Classify(pkg, st.licenses)
			fmt.Printf("ID:              %s\n", pkg.ID)
			fmt.Printf("Name:            %s\n", pkg.Name)
			fmt.Printf("Type:            %s\n", pkg.Type)
			fmt.Printf("License:         %s (%s)\n", orDash(pkg.LicenseID), status)
			fmt.Printf("Source:          %s\n", orDash(pkg.Source))
			fmt.Printf("Cloud location:  %s\n", orDash(pkg.CloudLocation))
			fmt.Printf("Archive:         %s\n", orDash(pkg.ArchiveLocation))
			fmt.Printf("Categories:      %s\n", orDash(strings.Join(pkg.Categories, ", ")))
			fmt.Printf("Tags:            %s\n", orDash(strings.Join(pkg.Tags, ", ")))
			fmt.Printf("Target version:  %s\n", orDash(pkg.TargetVersionTag))
			if pkg.IsPlugin() {
				fmt.Printf("Plugin folder:   %s\n", pkg.EffectiveFolderName())
			}
			if pkg.Notes != "" {
				fmt.Printf("Notes:           %s\n", pkg.Notes)
			}
			return nil
		},
	}
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
