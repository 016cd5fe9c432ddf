package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name:            "defaults when no config file exists",
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Datasets: DatasetsConfig{
					HSK1URL:       defaultHSK1URL,
					KangxiURL:     defaultKangxiURL,
					FetchTimeout:  10 * time.Second,
					RetryAttempts: 2,
					Offline:       false,
				},
				Decks: DecksConfig{File: ""},
				Quiz: QuizConfig{
					OptionCount:  4,
					AdvanceDelay: 1500 * time.Millisecond,
				},
			},
		},
		{
			name: "valid config file with custom values",
			configContent: `datasets:
  hsk1_url: https://example.com/hsk1.json
  kangxi_url: https://example.com/kangxi.json
  fetch_timeout: 3s
  retry_attempts: 5
  offline: true
decks:
  file: /tmp/decks.yml
quiz:
  option_count: 6
  advance_delay: 500ms
`,
			useExplicitPath: true,
			wantErr:         false,
			want: &Config{
				Datasets: DatasetsConfig{
					HSK1URL:       "https://example.com/hsk1.json",
					KangxiURL:     "https://example.com/kangxi.json",
					FetchTimeout:  3 * time.Second,
					RetryAttempts: 5,
					Offline:       true,
				},
				Decks: DecksConfig{File: "/tmp/decks.yml"},
				Quiz: QuizConfig{
					OptionCount:  6,
					AdvanceDelay: 500 * time.Millisecond,
				},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `quiz:
  advance_delay: 2s
`,
			useExplicitPath: true,
			wantErr:         false,
			want: &Config{
				Datasets: DatasetsConfig{
					HSK1URL:       defaultHSK1URL,
					KangxiURL:     defaultKangxiURL,
					FetchTimeout:  10 * time.Second,
					RetryAttempts: 2,
					Offline:       false,
				},
				Decks: DecksConfig{File: ""},
				Quiz: QuizConfig{
					OptionCount:  4,
					AdvanceDelay: 2 * time.Second,
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `datasets:
  invalid yaml format here [[[
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
