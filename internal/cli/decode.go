package cli

import (
	"github.com/spf13/cobra"
)

func newDecodeCommand(a *app) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "decode [value]",
		Short: "Print the cards of a deck link",
		Long: `Decode prints the name and cards of a ydke:// URI or a compact query value.
Use --legacy for values created by the old pipe-delimited format.

Examples:
  ygodeck decode 'ydke://FBFNAO1lvQHtZb0B!BBhGAg==!FBFNAA==!'
  ygodeck decode q2aAgBOMEFqUGUIDAA~~`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := a.decode(args[0], legacy)
			if err != nil {
				return err
			}

			printDeck(cmd.OutOrStdout(), deck)

			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "Decode a legacy query value")

	return cmd
}
