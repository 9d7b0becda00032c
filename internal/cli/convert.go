package cli

import (
	"github.com/spf13/cobra"
)

func newConvertCommand(a *app) *cobra.Command {
	var (
		target string
		legacy bool
		name   string
	)

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert a deck link to another encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := a.decode(args[0], legacy)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				deck.Name = name
			}

			return a.encode(cmd.OutOrStdout(), deck, target)
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", targetURI, "Target encoding: uri, query or ydk")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Decode a legacy query value")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Replace the deck name")

	return cmd
}
