package cmd

import (
	"fmt"

	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <folder>",
		Short: "List the catalog entries of an ES-DE folder",
		Long: `Lists every game shortcut of the folder's ROMs directory joined with
its stored info and steam metadata, as YAML. Games without stored
records show defaulted entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}

			entries, err := svc.ListCatalog(args[0])
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(entries)
			if err != nil {
				return fmt.Errorf("failed to format catalog: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
