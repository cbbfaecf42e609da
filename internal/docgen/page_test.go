package docgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/exampledocs/internal/example"
	"github.com/gorewood/exampledocs/internal/usage"
)

func containersMeta() *example.Metadata {
	return &example.Metadata{
		Index:         2,
		IndexWithZero: "02",
		Source:        `print("hi")`,
		Title:         "Containers",
		Usages:        []string{"python 02_containers.py --foo 1"},
		Description:   "Shows containers.",
		Path:          "/repo/examples/02_containers.py",
	}
}

func containersPageOptions() PageOptions {
	return PageOptions{
		Generator:      DefaultGenerator,
		Language:       "python",
		Runtime:        "python",
		ScriptPath:     "../../examples/02_containers.py",
		ExamplesPrefix: "../../examples/",
	}
}

func TestRenderPage_Containers(t *testing.T) {
	got, err := RenderPage(containersMeta(), containersPageOptions())
	require.NoError(t, err)

	want := strings.Join([]string{
		".. Comment: this file is automatically generated by `exampledocs generate`.",
		"   It should not be modified manually.",
		"",
		"2. Containers",
		"==========================================",
		"",
		"Shows containers.",
		"",
		"",
		".. code-block:: python",
		"        :linenos:",
		"",
		"",
		`        print("hi")`,
		"",
		"------------",
		"",
		".. raw:: html",
		"",
		"        <kbd>python 02_containers.py --foo 1</kbd>",
		"",
		".. program-output:: python ../../examples/02_containers.py --foo 1",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderPage_SourceIndentation(t *testing.T) {
	meta := containersMeta()
	meta.Source = "def f():\n    return 1\n\n\nprint(f())  "
	meta.Usages = nil

	got, err := RenderPage(meta, containersPageOptions())
	require.NoError(t, err)

	assert.Contains(t, got, "        def f():\n            return 1\n\n\n        print(f())\n")
	assert.True(t, strings.HasSuffix(got, "        print(f())\n"), "page without usages ends after the listing")
	assert.NotContains(t, got, ".. program-output::")
}

func TestRenderPage_QuotedArgument(t *testing.T) {
	meta := containersMeta()
	meta.Usages = []string{`python 02_containers.py --name "a b"`}

	got, err := RenderPage(meta, containersPageOptions())
	require.NoError(t, err)

	assert.Contains(t, got, "<kbd>python 02_containers.py --name 'a b'</kbd>")
	assert.Contains(t, got, ".. program-output:: python ../../examples/02_containers.py --name 'a b'")
}

func TestRenderPage_LabelEscapesHTML(t *testing.T) {
	meta := containersMeta()
	meta.Usages = []string{"python 02_containers.py --x '<a&b>'"}

	got, err := RenderPage(meta, containersPageOptions())
	require.NoError(t, err)

	assert.Contains(t, got, "<kbd>python 02_containers.py --x '&lt;a&amp;b&gt;'</kbd>")
	assert.Contains(t, got, ".. program-output:: python ../../examples/02_containers.py --x '<a&b>'")
}

func TestRenderPage_MarkdownDescription(t *testing.T) {
	meta := containersMeta()
	meta.Description = "Shows `containers` with **nesting**."

	got, err := RenderPage(meta, containersPageOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "\nShows ``containers`` with **nesting**.\n\n\n.. code-block:: python")
}

func TestRenderPage_LongTitleRule(t *testing.T) {
	meta := containersMeta()
	meta.Title = "A Very Long Title That Needs A Longer Underline"

	got, err := RenderPage(meta, containersPageOptions())
	require.NoError(t, err)

	heading := "2. " + meta.Title
	assert.Contains(t, got, heading+"\n"+strings.Repeat("=", len(heading))+"\n")
}

func TestRenderPage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		usage   string
		opts    func(*PageOptions)
		wantErr error
	}{
		{name: "usage without runtime", usage: "./02_containers.py", wantErr: usage.ErrNoRuntime},
		{name: "usage without script", usage: "python", wantErr: usage.ErrNoScript},
		{
			name:    "script outside examples prefix",
			usage:   "python 02_containers.py",
			opts:    func(o *PageOptions) { o.ScriptPath = "/abs/02_containers.py" },
			wantErr: usage.ErrPrefixMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := containersMeta()
			meta.Usages = []string{tt.usage}
			opts := containersPageOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			_, err := RenderPage(meta, opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), "02_containers.py: usage 1")
		})
	}
}

func TestOutputName(t *testing.T) {
	meta := containersMeta()
	meta.Title = "Nested Containers"
	assert.Equal(t, "02_nested_containers.rst", OutputName(meta, ".rst"))
}
