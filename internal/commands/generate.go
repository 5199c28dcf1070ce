package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/parser"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a palette without the interactive UI",
	Long: `Fetch one analogic palette and print it.

Examples:
  swatch generate                 # Random seed
  swatch generate --seed 3a86ff   # Palette derived from a given color
  swatch generate --export        # Also write color-palette.json
  swatch generate --copy 2        # Copy the second color to the clipboard
  swatch generate --json          # Print the palette as a JSON array`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetString("seed")
		doExport, _ := cmd.Flags().GetBool("export")
		copyIndex, _ := cmd.Flags().GetInt("copy")
		asJSON, _ := cmd.Flags().GetBool("json")

		if seed != "" && !parser.IsValidHex(seed) {
			return fmt.Errorf("invalid seed '%s': use RRGGBB or #RRGGBB", seed)
		}

		out := cmd.OutOrStdout()
		a, err := newApp(cmd, appOptions{notifier: printNotifier{w: cmd.ErrOrStderr()}})
		if err != nil {
			return err
		}
		defer a.Close()

		var palette models.Palette
		if seed != "" {
			palette, err = a.session.GenerateFrom(cmd.Context(), seed)
		} else {
			palette, err = a.session.Generate(cmd.Context())
		}
		if err != nil {
			return err
		}

		if asJSON {
			data, err := json.Marshal(palette.Strings())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		} else if isTerminal(out) {
			fmt.Fprintln(out, renderSwatches(palette))
		} else {
			for _, c := range palette {
				fmt.Fprintln(out, c.Hash())
			}
		}

		if copyIndex != 0 {
			if copyIndex < 1 || copyIndex > len(palette) {
				return fmt.Errorf("--copy must be between 1 and %d", len(palette))
			}
			if err := a.session.Copy(palette[copyIndex-1]); err != nil {
				return err
			}
		}

		if doExport {
			path, err := a.session.Export()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "💾 Exported to %s\n", path)
		}

		return nil
	},
}

// printNotifier writes session notifications as single lines
type printNotifier struct {
	w io.Writer
}

func (p printNotifier) Notify(title, description string) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	fmt.Fprintf(p.w, "%s %s\n", titleStyle.Render(title+":"), description)
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderSwatches renders one colored block and hex code per line
func renderSwatches(p models.Palette) string {
	var b strings.Builder
	for i, c := range p {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hash())).
			Render("        ")
		fmt.Fprintf(&b, "%d %s #%s\n", i+1, block, c)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func init() {
	generateCmd.Flags().StringP("seed", "s", "", "Seed color (RRGGBB); random when empty")
	generateCmd.Flags().BoolP("export", "e", false, "Write the palette to color-palette.json in the export dir")
	generateCmd.Flags().IntP("copy", "c", 0, "Copy the Nth color (1-based) to the clipboard")
	generateCmd.Flags().Bool("json", false, "Print the palette as a JSON array")
}
