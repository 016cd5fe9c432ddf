package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanzideck/hanzideck/internal/deck"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{
			name:      "default mode logs info and above",
			debugMode: false,
			wantDebug: false,
		},
		{
			name:      "debug mode enables debug logs",
			debugMode: true,
			wantDebug: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldLogger := slog.Default()
			t.Cleanup(func() { slog.SetDefault(oldLogger) })

			setupLogger(tt.debugMode)

			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestNewBrowseCommand(t *testing.T) {
	cmd := newBrowseCommand()

	assert.Equal(t, "browse", cmd.Use)
	assert.Equal(t, "Interactively browse, edit, study and quiz collections", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewCollectionsCommand(t *testing.T) {
	cmd := newCollectionsCommand()

	assert.Equal(t, "collections", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	uses := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		uses = append(uses, sub.Use)
	}
	assert.Contains(t, uses, "list")
	assert.Contains(t, uses, "show <collection name>")
}

func TestNewCollectionsListCommand(t *testing.T) {
	cmd := newCollectionsListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("type")
	assert.NotNil(t, flag)
	assert.Equal(t, "all", flag.DefValue)
}

func TestTypeFilter(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, value := range []string{"all", "hsk1", "kangxi", "custom"} {
			var filter typeFilter
			assert.NoError(t, filter.Set(value))
			assert.Equal(t, value, filter.String())
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		var filter typeFilter
		assert.Error(t, filter.Set("hsk2"))
	})

	t.Run("matches", func(t *testing.T) {
		tests := []struct {
			name           string
			filter         typeFilter
			collectionType deck.CollectionType
			want           bool
		}{
			{name: "all matches everything", filter: filterAll, collectionType: deck.TypeCustom, want: true},
			{name: "hsk1 matches themed collections", filter: filterHSK1, collectionType: deck.TypeHSK1, want: true},
			{name: "hsk1 matches the aggregate", filter: filterHSK1, collectionType: deck.TypeHSK1All, want: true},
			{name: "hsk1 excludes kangxi", filter: filterHSK1, collectionType: deck.TypeKangxi, want: false},
			{name: "kangxi matches the aggregate", filter: filterKangxi, collectionType: deck.TypeKangxiAll, want: true},
			{name: "custom excludes built-ins", filter: filterCustom, collectionType: deck.TypeHSK1, want: false},
			{name: "custom matches custom", filter: filterCustom, collectionType: deck.TypeCustom, want: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.filter.matches(tt.collectionType))
			})
		}
	})
}

func TestNewStudyCommand(t *testing.T) {
	cmd := newStudyCommand()

	assert.Equal(t, "study <collection name>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"Числа"}))
}

func TestNewQuizCommand(t *testing.T) {
	cmd := newQuizCommand()

	assert.Equal(t, "quiz <collection name>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.Error(t, cmd.Args(cmd, []string{}))
}

func TestNewSearchCommand(t *testing.T) {
	cmd := newSearchCommand()

	assert.Equal(t, "search <query>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.Error(t, cmd.Args(cmd, []string{"два", "слова"}))
}

func TestNewCollectionsListCommand_RunE_configError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newCollectionsListCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
