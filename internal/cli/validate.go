package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

func newValidateCommand(a *app) *cobra.Command {
	var (
		format string
		legacy bool
	)

	cmd := &cobra.Command{
		Use:   "validate [value]",
		Short: "Check a deck link against the rules of a format",
		Long: `Validate decodes a deck link and checks every card against the deck part,
capacity and ban list rules of a format (tcg, ocg, goat or duel_links).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format)
			if err != nil {
				return err
			}

			deck, err := a.decode(args[0], legacy)
			if err != nil {
				return err
			}

			report := ygodeck.Validate(deck, f)

			w := cmd.OutOrStdout()
			if report.Valid() {
				fmt.Fprintln(w, color.GreenString("✅ Deck is valid under %s.", f))
			} else {
				fmt.Fprintln(w, color.RedString("❌ Deck has %d errors under %s:", len(report.Errors), f))
				for i, e := range report.Errors {
					fmt.Fprintf(w, "%d. %s\n", i+1, e)
				}
			}

			if len(report.Warnings) > 0 {
				fmt.Fprintln(w, color.YellowString("\nWarnings:"))
				for i, warn := range report.Warnings {
					fmt.Fprintf(w, "%d. %s\n", i+1, warn)
				}
			}

			if !report.Valid() {
				return errors.New("validation failed")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Format to validate against (defaults to the config)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Decode a legacy query value")

	return cmd
}
