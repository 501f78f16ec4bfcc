package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var (
		name         string
		source       string
		cloud        string
		archiveURL   string
		categories   []string
		tags         []string
		notes        string
		licenseID    string
		pkgType      string
		pluginFolder string
		versionTag   string
	)

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Register a package",
		Long: `Register a new package in the registry.
The license gate runs before registration: in restrictive mode a package
without an acceptable license cannot be added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}

			pkg := &model.Package{
				ID:               args[0],
				Name:             name,
				Source:           source,
				CloudLocation:    cloud,
				ArchiveLocation:  archiveURL,
				Categories:       categories,
				Tags:             tags,
				Notes:            notes,
				LicenseID:        licenseID,
				Type:             model.PackageType(pkgType),
				PluginFolderName: pluginFolder,
				TargetVersionTag: versionTag,
			}
			if pkg.Name == "" {
				pkg.Name = pkg.ID
			}
			if pkg.Type != model.TypeContent && pkg.Type != model.TypePlugin {
				return fmt.Errorf("unknown package type %q (use content or plugin)", pkgType)
			}

			status, decision, err := policy.Gate(pkg, st.licenses, st.cfg.LicenseMode)
			if err != nil {
				return err
			}
			if decision == policy.Warn {
				logger.Warn("Registering despite license status", logger.Fields{"id": pkg.ID, "status": status})
			}

			updated, err := registry.AddPackage(st.packages, pkg)
			if err != nil {
				return err
			}
			if err := st.store.SavePackages(updated); err != nil {
				return err
			}
			logger.Successf("Registered %s (%s)", pkg.ID, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the id)")
	cmd.Flags().StringVar(&source, "source", "", "Provenance tag (e.g. marketplace, itch, humble)")
	cmd.Flags().StringVar(&cloud, "cloud", "", "Human-browsable URL")
	cmd.Flags().StringVar(&archiveURL, "archive", "", "Direct-fetchable archive URL")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Category (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&licenseID, "license", "", "License id from the license list")
	cmd.Flags().StringVar(&pkgType, "type", "content", "Package type: content or plugin")
	cmd.Flags().StringVar(&pluginFolder, "plugin-folder", "", "Plugin folder name (defaults to the id)")
	cmd.Flags().StringVar(&versionTag, "target-version", "", "Coarse engine version tag, e.g. 5.3")

	return cmd
}
