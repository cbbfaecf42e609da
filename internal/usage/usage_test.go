package usage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = "../../examples/03_x.py"

func TestRewrite(t *testing.T) {
	tests := []struct {
		name  string
		usage string
		want  string
	}{
		{
			name:  "plain flags",
			usage: "python 03_x.py --foo 1",
			want:  "python ../../examples/03_x.py --foo 1",
		},
		{
			name:  "quoted argument kept intact",
			usage: `python 03_x.py --name "a b"`,
			want:  "python ../../examples/03_x.py --name 'a b'",
		},
		{
			name:  "single quotes normalised",
			usage: `python 03_x.py --name 'a b' --flag`,
			want:  "python ../../examples/03_x.py --name 'a b' --flag",
		},
		{
			name:  "leading environment assignment",
			usage: "CUDA_VISIBLE_DEVICES=0 python 03_x.py --help",
			want:  "CUDA_VISIBLE_DEVICES=0 python ../../examples/03_x.py --help",
		},
		{
			name:  "equals form stays bare",
			usage: "python 03_x.py --foo=1 --bar.baz=a,b",
			want:  "python ../../examples/03_x.py --foo=1 --bar.baz=a,b",
		},
		{
			name:  "glob is quoted",
			usage: "python 03_x.py --files '*.txt'",
			want:  "python ../../examples/03_x.py --files '*.txt'",
		},
		{
			name:  "apostrophe falls back to double quotes",
			usage: `python 03_x.py --msg "it's"`,
			want:  `python ../../examples/03_x.py --msg "it's"`,
		},
		{
			name:  "hash is an argument, not a comment",
			usage: "python 03_x.py --tag #1 --n 2",
			want:  "python ../../examples/03_x.py --tag '#1' --n 2",
		},
		{
			name:  "backslash kept inside double quotes",
			usage: `python 03_x.py --sep "a\b"`,
			want:  `python ../../examples/03_x.py --sep 'a\b'`,
		},
		{
			name:  "empty argument",
			usage: `python 03_x.py --name ""`,
			want:  "python ../../examples/03_x.py --name ''",
		},
		{
			name:  "only script",
			usage: "python 03_x.py",
			want:  "python ../../examples/03_x.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rewrite(tt.usage, "python", script)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite_CustomRuntime(t *testing.T) {
	got, err := Rewrite("uv run python3 03_x.py -v", "python3", script)
	require.NoError(t, err)
	assert.Equal(t, "uv run python3 ../../examples/03_x.py -v", got)
}

func TestRewrite_Errors(t *testing.T) {
	tests := []struct {
		name    string
		usage   string
		wantErr error
	}{
		{name: "no runtime", usage: "./03_x.py --foo 1", wantErr: ErrNoRuntime},
		{name: "runtime only as substring", usage: "python3 03_x.py", wantErr: ErrNoRuntime},
		{name: "no script", usage: "python", wantErr: ErrNoScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rewrite(tt.usage, "python", script)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRewrite_UnterminatedQuote(t *testing.T) {
	_, err := Rewrite(`python 03_x.py --name "a b`, "python", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splitting usage")
}

func TestJoin(t *testing.T) {
	got, err := Join([]string{"python", "a b", "$HOME", "x;y"})
	require.NoError(t, err)
	assert.Equal(t, "python 'a b' '$HOME' 'x;y'", got)
}

func TestLabel(t *testing.T) {
	got, err := Label("python ../../examples/03_x.py --name 'a b'", "../../examples/")
	require.NoError(t, err)
	assert.Equal(t, "python 03_x.py --name 'a b'", got)

	_, err = Label("python /abs/03_x.py", "../../examples/")
	assert.True(t, errors.Is(err, ErrPrefixMissing))

	_, err = Label("python 03_x.py", "")
	assert.True(t, errors.Is(err, ErrPrefixMissing))
}
