package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "A terminal color palette generator",
	Long: `swatch fetches analogic color palettes from The Color API and shows them in your terminal.
Copy colors, save palettes for the session, export them as JSON and switch between dark and light themes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		notifier := tui.NewToastNotifier()
		theme := tui.NewTheme(models.Light)

		a, err := newApp(cmd, appOptions{
			notifier:  notifier,
			theme:     theme,
			logToFile: true,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		theme.SetDark(bool(a.session.DisplayMode()))
		return tui.RunPaletteTUI(cmd.Context(), a.session, theme, notifier)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "swatch %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command, cancelling in-flight work on interrupt
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: <user config dir>/swatch/config.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("dark", false, "Start in dark mode")

	// Add subcommands here
	rootCmd.AddCommand(generateCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
