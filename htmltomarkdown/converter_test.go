package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "headings",
			html: `<h1>Title</h1><h2>Subtitle</h2>`,
			want: []string{"# Title", "## Subtitle"},
		},
		{
			name: "links",
			html: `<p>See <a href="https://docs.example.com/api">the API</a>.</p>`,
			want: []string{"[the API](https://docs.example.com/api)"},
		},
		{
			name: "lists",
			html: `<ul><li>Install</li><li>Configure</li></ul>`,
			want: []string{"- Install", "- Configure"},
		},
		{
			name: "fenced code with language",
			html: `<pre><code class="language-bash">docscrape https://docs.example.com</code></pre>`,
			want: []string{"```bash", "docscrape https://docs.example.com"},
		},
		{
			name: "inline code and emphasis",
			html: `<p><strong>Note:</strong> call <code>Run()</code> <em>once</em>.</p>`,
			want: []string{"**Note:**", "`Run()`", "*once*"},
		},
		{
			name: "tables",
			html: `<table><thead><tr><th>Flag</th><th>Default</th></tr></thead><tbody><tr><td>--rate</td><td>0</td></tr></tbody></table>`,
			want: []string{"Flag", "Default", "--rate", "|", "---"},
		},
		{
			name: "strikethrough",
			html: `<p><del>deprecated</del></p>`,
			want: []string{"~~deprecated~~"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tt.html)

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, md, w)
			}
		})
	}
}

func TestConverter_Convert_TrimsSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>Hello</p>\n\n")

	require.NoError(t, err)
	assert.Equal(t, "Hello", md)
}

func TestConverter_Convert_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := htmltomarkdown.NewConverter().Convert("   ")

	require.Error(t, err)
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
}
