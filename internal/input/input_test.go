package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain newlines",
			text: "abc\ndef\nghi",
			want: []string{"abc", "def", "ghi"},
		},
		{
			name: "windows line endings",
			text: "abc\r\ndef\r\n",
			want: []string{"abc", "def"},
		},
		{
			name: "trailing newline dropped",
			text: "abc\ndef\n",
			want: []string{"abc", "def"},
		},
		{
			name: "interior blank lines kept",
			text: "abc\n\ndef\n",
			want: []string{"abc", "", "def"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Lines(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "day0.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
