package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/pkg/policy"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var filterCategory string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered packages",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			if len(st.packages) == 0 {
				fmt.Println("No packages registered.")
				return nil
			}

			fmt.Printf("%-24s %-8s %-15s %s\n", "ID", "TYPE", "LICENSE", "NAME")
			for _, pkg := range st.packages {
				if filterCategory != "" && !contains(pkg.Categories, filterCategory) {
					continue
				}
				status := policy.Classify(pkg, st.licenses)
				fmt.Printf("%-24s %-8s %-15s %s\n", pkg.ID, pkg.Type, status, pkg.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filterCategory, "category", "", "Only show packages in this category")
	return cmd
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
