package cli

import (
	"github.com/spf13/cobra"
)

func newEncodeCommand(a *app) *cobra.Command {
	var (
		target string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "encode [file.ydk]",
		Short: "Encode a ydk file as a deck link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := a.readYDK(args[0])
			if err != nil {
				return err
			}
			deck.Name = name

			a.logger.Debug("read ydk file", "path", args[0], "cards", len(deck.AllCards()))

			return a.encode(cmd.OutOrStdout(), deck, target)
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", targetQuery, "Target encoding: uri, query or ydk")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Deck name (only stored by query values)")

	return cmd
}
