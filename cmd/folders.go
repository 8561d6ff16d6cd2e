package cmd

import (
	"fmt"

	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/spf13/cobra"
)

func newFoldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage the configured ES-DE folders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}
			for _, folder := range svc.ListFolders() {
				fmt.Println(folder)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Register an ES-DE folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}
			added, err := svc.AddFolder(args[0])
			if err != nil {
				return err
			}
			fmt.Println("Added", added)
			return nil
		},
	})

	return cmd
}
