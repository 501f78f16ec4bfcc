package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/policy"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the registry, policy mode and archive cache",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}

			counts := map[model.LicenseStatus]int{}
			for _, pkg := range st.packages {
				counts[policy.Classify(pkg, st.licenses)]++
			}

			fmt.Printf("Policy mode:    %s\n", st.cfg.LicenseMode)
			fmt.Printf("Packages:       %d\n", len(st.packages))
			for _, status := range []model.LicenseStatus{
				model.StatusOK, model.StatusNonCommercial, model.StatusUnknown, model.StatusNoLicense,
			} {
				if counts[status] > 0 {
					fmt.Printf("  %-15s %d\n", status, counts[status])
				}
			}
			fmt.Printf("Licenses:       %d\n", len(st.licenses))

			cm, err := newCacheManager(st)
			if err != nil {
				return err
			}
			info, err := cm.Info()
			if err != nil {
				return err
			}
			fmt.Printf("Cache:          %d archive(s), %d bytes in %s\n", info.Count, info.TotalBytes, info.Directory)
			return nil
		},
	}
	return cmd
}
