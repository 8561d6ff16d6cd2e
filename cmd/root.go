package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

func NewRootCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "esde-steam-manager",
		Short: "Keep an ES-DE steam catalog in sync with the Steam store",
		Long: `esde-steam-manager maintains the gameList.xml and steamids.xml documents
of an ES-DE folder, matching local game shortcuts against the Steam store
and downloading cover art, marquees, screenshots, and trailers into the
frontend's media directories.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if logFile != "" {
				slog.SetDefault(slog.New(slog.NewJSONHandler(&lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    10, // megabytes
					MaxBackups: 3,
				}, nil)))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&logFile, "log-file", os.Getenv("ESDE_LOG_FILE"), "Write JSON logs to this rotating file instead of stderr")

	// Add subcommands
	cmd.AddCommand(newFoldersCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
