package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzideck/hanzideck/internal/cli"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study <collection name>",
		Short: "Study a collection with flip cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := buildStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("buildStore() > %w", err)
			}

			collection, err := findCollection(store, args[0])
			if err != nil {
				return err
			}

			studyCLI, err := cli.NewStudyCLI(collection)
			if err != nil {
				return err
			}

			fmt.Printf("Studying %s (%d cards)\n\n", collection.Name, studyCLI.CardCount())
			return studyCLI.Run(cmd.Context(), studyCLI)
		},
	}
}
