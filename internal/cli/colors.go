// Package cli — colors.go implements the "qrpro colors" command.
//
// The colors command lists the color names accepted by the --fg and --bg
// flags, marking the defaults. It exists so users do not have to guess
// which names the palette knows.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/palette"
)

// NewColorsCommand creates the "colors" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewColorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List available color names",
		Long: `List the color names accepted by the --fg and --bg flags.

Unknown names do not fail generation; they fall back to the defaults
(black foreground, white background).`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			printColorsResult(palette.Names())
			return nil
		},
	}

	return cmd
}

// printColorsResult outputs the palette in text or JSON format,
// depending on the global --json flag.
func printColorsResult(names []string) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"colors":            names,
			"defaultForeground": "black",
			"defaultBackground": "white",
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println("Available colors:")
	for _, name := range names {
		switch name {
		case "black":
			fmt.Printf("  %s (default foreground)\n", name)
		case "white":
			fmt.Printf("  %s (default background)\n", name)
		default:
			fmt.Printf("  %s\n", name)
		}
	}
}
