package cmd

import (
	"fmt"

	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search the Steam store by game name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}

			results, err := svc.SearchRemote(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Found %d results:\n\n", len(results))
			for _, r := range results {
				fmt.Printf("ID: %7d - Title: %s\n", r.AppID, r.Name)
			}
			return nil
		},
	}
}
