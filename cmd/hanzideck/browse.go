package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzideck/hanzideck/internal/cli"
)

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse, edit, study and quiz collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := buildStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("buildStore() > %w", err)
			}

			fmt.Println("Collections are kept in memory for this run only.")
			fmt.Println()

			browseCLI := cli.NewBrowseCLI(store, quizOptions(cfg))
			return browseCLI.Run(cmd.Context(), browseCLI)
		},
	}
}
