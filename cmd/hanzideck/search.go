package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanzideck/hanzideck/internal/cli"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search all cards by character, pinyin, palladius or translation",
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

			cli.RenderSearchResults(os.Stdout, store.Search(args[0]))
			return nil
		},
	}
}
