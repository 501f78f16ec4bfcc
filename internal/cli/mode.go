package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
)

// NewModeCmd creates the mode command.
func NewModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode [restrictive|permissive]",
		Short: "Show or set the license policy mode",
		Long: `Without an argument, print the active policy mode. With an argument,
switch the mode and save the configuration. In restrictive mode any
non-OK license status blocks installs; in permissive mode it warns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(st.cfg.LicenseMode)
				return nil
			}

			if !model.ValidMode(args[0]) {
				return errors.Wrapf(errors.ErrConfigValidation, "unknown mode %q", args[0])
			}
			mode := model.PolicyMode(args[0])
			st.cfg.LicenseMode = mode
			if err := st.cfg.Save(st.configPath); err != nil {
				return err
			}
			logger.Successf("License policy mode set to %s", mode)
			return nil
		},
	}
	return cmd
}
