package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLicensesCmd creates the licenses command.
func NewLicensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "List known license definitions",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			if len(st.licenses) == 0 {
				fmt.Println("No licenses defined.")
				return nil
			}

			fmt.Printf("%-16s %-12s %s\n", "ID", "COMMERCIAL", "NAME")
			for _, lic := range st.licenses {
				commercial := "no"
				if lic.Commercial {
					commercial = "yes"
				}
				fmt.Printf("%-16s %-12s %s\n", lic.ID, commercial, lic.Name)
			}
			return nil
		},
	}
	return cmd
}
