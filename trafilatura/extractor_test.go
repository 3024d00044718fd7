package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docscrape.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and description from head", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started</title>
<meta name="description" content="How to install and configure the SDK.">
</head>
<body>
<main>
<h1>Getting Started</h1>
<p>Install the SDK with your package manager and export your credentials before running the examples.</p>
</main>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Getting Started")
		assert.Equal(t, "How to install and configure the SDK.", result.Description)
	})

	t.Run("keeps article content and code", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Client Reference</title></head>
<body>
<nav><a href="/">Home</a><a href="/reference">Reference</a></nav>
<article>
<h1>Client Reference</h1>
<p>The client wraps every endpoint of the service and retries nothing on its own.</p>
<pre><code>client := sdk.NewClient(apiKey)</code></pre>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "wraps every endpoint")
		assert.Contains(t, result.ContentHTML, "sdk.NewClient")
	})

	t.Run("drops navigation menus", func(t *testing.T) {
		t.Parallel()

		// Given a short docs page wrapped in a sidebar and a site header
		html := `<!DOCTYPE html>
<html>
<head><title>Concepts</title></head>
<body>
<header><a href="/">Acme Docs</a></header>
<nav class="sidebar">
<ul>
<li><a href="/concepts">Concepts</a></li>
<li><a href="/tutorials">Tutorials</a></li>
<li><a href="/changelog">Changelog</a></li>
</ul>
</nav>
<main>
<h1>Concepts</h1>
<p>A workspace groups projects that share billing, members and API keys across environments.</p>
</main>
<aside><a href="/status">System status</a></aside>
</body>
</html>`

		// When the main content is extracted
		result, err := trafilatura.NewExtractor().Extract(html)

		// Then only the page body remains
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "A workspace groups projects")
		assert.NotContains(t, result.ContentHTML, "Changelog")
		assert.NotContains(t, result.ContentHTML, "Tutorials")
		assert.NotContains(t, result.ContentHTML, "Acme Docs")
		assert.NotContains(t, result.ContentHTML, "System status")
	})

	t.Run("keeps the heading inside an article header", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Webhooks</title></head><body>
<article>
<header><h1>Webhooks</h1></header>
<p>Webhooks deliver signed event payloads to your endpoint within seconds of the change that caused them.</p>
<p>Each delivery is retried with backoff until the endpoint answers with a success status code.</p>
</article>
</body></html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Webhooks", result.Title)
		assert.Contains(t, result.ContentHTML, "signed event payloads")
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})

	t.Run("returns EINVALID for blank input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("  \n ")

		require.Error(t, err)
		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})
}
