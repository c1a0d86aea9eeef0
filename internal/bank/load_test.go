package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Greater(t, b.Len(), 10, "embedded bank must exceed the free tier")
	assert.NotEmpty(t, b.Categories())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr string
	}{
		{
			name:    "valid",
			input:   `[{"id":1,"category":"A","question":"q","answer":"a"},{"id":3,"category":"B","question":"q2","answer":""}]`,
			wantLen: 2,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantLen: 0,
		},
		{
			name:    "not json",
			input:   `{nope`,
			wantErr: "invalid JSON",
		},
		{
			name:    "missing answer",
			input:   `[{"id":1,"category":"A","question":"q"}]`,
			wantErr: "schema validation failed",
		},
		{
			name:    "zero id",
			input:   `[{"id":0,"category":"A","question":"q","answer":"a"}]`,
			wantErr: "schema validation failed",
		},
		{
			name:    "string id",
			input:   `[{"id":"1","category":"A","question":"q","answer":"a"}]`,
			wantErr: "schema validation failed",
		},
		{
			name:    "duplicate ids",
			input:   `[{"id":1,"category":"A","question":"q","answer":"a"},{"id":1,"category":"A","question":"q","answer":"a"}]`,
			wantErr: "duplicate question id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, b.Len())
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":5,"category":"A","question":"q","answer":"a"}]`), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	q, ok := b.ByID(5)
	require.True(t, ok)
	assert.Equal(t, "A", q.Category)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
