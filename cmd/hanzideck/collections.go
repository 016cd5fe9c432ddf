package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hanzideck/hanzideck/internal/cli"
	"github.com/hanzideck/hanzideck/internal/deck"
)

// typeFilter limits the collection list to one dataset family.
type typeFilter string

func (f *typeFilter) Set(val string) error {
	for _, filter := range allTypeFilters {
		if val == string(filter) {
			*f = filter
			return nil
		}
	}
	return fmt.Errorf("invalid type: %s", val)
}

func (f typeFilter) String() string {
	return string(f)
}

func (f *typeFilter) Type() string {
	return "type"
}

const (
	filterAll    typeFilter = "all"
	filterHSK1   typeFilter = "hsk1"
	filterKangxi typeFilter = "kangxi"
	filterCustom typeFilter = "custom"
)

var (
	_              pflag.Value = (*typeFilter)(nil)
	allTypeFilters             = []typeFilter{filterAll, filterHSK1, filterKangxi, filterCustom}
)

func (f typeFilter) matches(collectionType deck.CollectionType) bool {
	switch f {
	case filterHSK1:
		return collectionType == deck.TypeHSK1 || collectionType == deck.TypeHSK1All
	case filterKangxi:
		return collectionType == deck.TypeKangxi || collectionType == deck.TypeKangxiAll
	case filterCustom:
		return collectionType == deck.TypeCustom
	}
	return true
}

func newCollectionsCommand() *cobra.Command {
	collectionsCommand := &cobra.Command{
		Use:   "collections",
		Short: "Inspect the imported card collections",
	}

	collectionsCommand.AddCommand(newCollectionsListCommand())
	collectionsCommand.AddCommand(newCollectionsShowCommand())

	return collectionsCommand
}

func newCollectionsListCommand() *cobra.Command {
	filter := filterAll
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List all collections in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := buildStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("buildStore() > %w", err)
			}

			var collections []*deck.Collection
			for _, collection := range store.ListCollectionsSorted() {
				if filter.matches(collection.Type) {
					collections = append(collections, collection)
				}
			}
			cli.RenderCollections(os.Stdout, collections)
			return nil
		},
	}
	listCommand.Flags().Var(&filter, "type",
		fmt.Sprintf("Limit the list to one dataset family. Possible values are %v", allTypeFilters))
	return listCommand
}

func newCollectionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <collection name>",
		Short: "Show the cards of one collection",
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

			cli.RenderCards(os.Stdout, collection)
			return nil
		},
	}
}
