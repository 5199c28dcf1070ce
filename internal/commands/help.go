package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for swatch",
	Long:  `Display detailed help for all swatch commands, flags and hotkeys.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd)
	},
}

func showCustomHelp(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), `
███████╗██╗    ██╗ █████╗ ████████╗ ██████╗██╗  ██╗
██╔════╝██║    ██║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
███████╗██║ █╗ ██║███████║   ██║   ██║     ███████║
╚════██║██║███╗██║██╔══██║   ██║   ██║     ██╔══██║
███████║╚███╔███╔╝██║  ██║   ██║   ╚██████╗██║  ██║
╚══════╝ ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝

swatch - terminal color palette generator

COMMANDS:

  swatch                  Open the interactive palette UI
    --dark                Start in dark mode

    Hotkeys:
      g / space     Generate a new palette
      /             Generate from a seed color
      s             Save the palette (kept until you quit)
      e             Export the palette to color-palette.json
      c / enter     Copy the selected color
      1-9           Copy the nth color
      ←/→           Select a color
      tab, ↑/↓      Select a saved palette
      r / enter     Restore the selected saved palette
      t             Toggle dark/light theme
      ?             More help
      q / esc       Quit

  generate                Fetch one palette and print it
    -s, --seed            Seed color (RRGGBB)
    -e, --export          Write color-palette.json
    -c, --copy N          Copy the Nth color
    --json                Print as a JSON array

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:
  --config <file>         Config file (TOML)
  --debug                 Debug logging

CONFIG (env overrides use SWATCH_, e.g. SWATCH_API_MODE=triad):
  [api]     base_url, mode, count, timeout
  [export]  dir
  [log]     file, level
  [ui]      dark

`)
}
