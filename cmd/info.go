package cmd

import (
	"fmt"
	"strconv"

	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/mcaralp/esde-steam-manager/internal/steam"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "info <appid>",
		Short: "Show Steam store details for an app id",
		Example: `  esde-steam-manager info 620
  esde-steam-manager info 620 --locale fr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid app id %q", args[0])
			}

			svc, err := service.New()
			if err != nil {
				return err
			}

			details, reviews, err := svc.RemoteDetails(cmd.Context(), appID, locale)
			if err != nil {
				return err
			}

			info := details.GameInfo("", reviews)
			fmt.Printf("Title: %s\n", info.Name)
			fmt.Printf("Release Date: %s\n", info.ReleaseDate)
			fmt.Printf("Developers: %s\n", info.Developer)
			fmt.Printf("Publishers: %s\n", info.Publisher)
			fmt.Printf("Genres: %s\n", info.Genre)
			fmt.Printf("Players: %s\n", info.Players)
			fmt.Printf("Steam Rating: %g (%s, %d reviews)\n", info.Rating, reviews.Desc, reviews.TotalReviews)
			fmt.Printf("Short Description: %s\n", info.Desc)
			fmt.Printf("Logo URL: %s\n", steam.LogoURL(appID))
			fmt.Printf("Capsule URL: %s\n", steam.CapsuleURL(appID))
			if len(details.Screenshots) > 0 {
				fmt.Printf("Screenshot: %s\n", details.Screenshots[0])
			}
			if len(details.MovieIDs) > 0 {
				fmt.Printf("Movie: %s\n", steam.TrailerURL(details.MovieIDs[0]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "en", "Store locale for descriptions")

	return cmd
}
