package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/reviewpilot/internal/core"
)

func TestParseBatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []core.PullRequestRef
		wantErr bool
	}{
		{
			name: "Mixed entries keep order",
			input: `
reviews:
  - owner: octo
    repo: hello
    pr_number: 12
  - url: https://github.com/octo/world/pull/3
`,
			want: []core.PullRequestRef{
				{Owner: "octo", Repo: "hello", Number: 12},
				{Owner: "octo", Repo: "world", Number: 3},
			},
		},
		{
			name:    "Empty list",
			input:   "reviews: []",
			wantErr: true,
		},
		{
			name: "Missing repo",
			input: `
reviews:
  - owner: octo
    pr_number: 1
`,
			wantErr: true,
		},
		{
			name: "Bad URL",
			input: `
reviews:
  - url: https://github.com/octo/hello/issues/1
`,
			wantErr: true,
		},
		{
			name:    "Invalid YAML",
			input:   "reviews: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBatch([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reviews:\n  - owner: a\n    repo: b\n    pr_number: 1\n"), 0600))

	refs, err := LoadBatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, []core.PullRequestRef{{Owner: "a", Repo: "b", Number: 1}}, refs)

	_, err = LoadBatchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
