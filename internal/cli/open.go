package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/browser"
	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// NewOpenCmd creates the open command.
func NewOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [ID]",
		Short: "Open a package's browse location in the browser",
		Long: `Open the package's cloud location in the default browser. Without an
id the configured asset root URL is opened instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}

			url := st.cfg.AssetRootURL
			if len(args) == 1 {
				pkg := registry.FindPackage(st.packages, args[0])
				if pkg == nil {
					return errors.Wrapf(errors.ErrPackageNotFound, "id %s", args[0])
				}
				url = pkg.CloudLocation
			}
			if url == "" {
				return fmt.Errorf("no browse location configured")
			}
			return browser.Open(url)
		},
	}
	return cmd
}
