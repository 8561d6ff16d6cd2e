package cmd

import (
	"fmt"

	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <folder>",
		Short: "Sync an ES-DE folder's catalog against the Steam store",
		Long: `Matches every game shortcut in the folder against the Steam store,
fills both gamelist documents with the store's metadata, and downloads
changed assets (marquee, cover, screenshot, trailer) into the ES-DE
media directories. Games the store does not know are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}

			synced, err := svc.Sync(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Synced %d games\n", synced)
			return nil
		},
	}
}
