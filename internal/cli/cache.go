package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packrat-tools/packrat/internal/logger"
)

// NewCacheCmd creates the cache command group.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the archive cache",
	}
	cmd.AddCommand(newCacheInfoCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache location, entry count and total size",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			cm, err := newCacheManager(st)
			if err != nil {
				return err
			}
			info, err := cm.Info()
			if err != nil {
				return err
			}
			fmt.Printf("Directory: %s\n", info.Directory)
			fmt.Printf("Entries:   %d\n", info.Count)
			fmt.Printf("Size:      %d bytes\n", info.TotalBytes)
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached archives",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := loadState()
			if err != nil {
				return err
			}
			cm, err := newCacheManager(st)
			if err != nil {
				return err
			}
			if !force && !stdinConfirm(fmt.Sprintf("Delete all cached archives in %s?", cm.Directory()), false) {
				fmt.Println("Aborted.")
				return nil
			}
			freed, err := cm.Clear()
			if err != nil {
				return err
			}
			logger.Successf("Removed %d archive(s), freed %d bytes", freed.Count, freed.TotalBytes)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Clear without confirmation")
	return cmd
}
