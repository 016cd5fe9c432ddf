package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzideck/hanzideck/internal/cli"
)

func newQuizCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz <collection name>",
		Short: "Take a multiple-choice quiz on a collection",
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

			quizCLI, err := cli.NewQuizCLI(collection, store.CardPool(), quizOptions(cfg))
			if err != nil {
				return err
			}
			defer quizCLI.Close()

			fmt.Printf("Quiz on %s\n\n", collection.Name)
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}
}
