package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_HTMLMainContent(t *testing.T) {
	page := `<html>
<head><title>Job</title><script>var tracker = 1;</script><style>.x{}</style></head>
<body>
<nav>Home | Jobs | About</nav>
<main>
<h1>Backend Engineer</h1>
<p>We need Python and Docker.</p>
</main>
<footer>All rights reserved</footer>
</body>
</html>`

	text, err := ExtractText("posting.html", []byte(page))

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nWe need Python and Docker.", text)
}

func TestExtractText_HTMLFallsBackToBody(t *testing.T) {
	page := `<html><body>
<p>Looking for a Go developer.</p>
<p>Remote friendly.</p>
</body></html>`

	text, err := ExtractText("posting.htm", []byte(page))

	require.NoError(t, err)
	assert.Equal(t, "Looking for a Go developer.\nRemote friendly.", text)
}

func TestExtractText_HTMLStripsNoise(t *testing.T) {
	page := `<html><body>
<header>Site header</header>
<article>
<p>Kubernetes experience required.</p>
</article>
<script>analytics();</script>
</body></html>`

	text, err := ExtractText("posting.html", []byte(page))

	require.NoError(t, err)
	assert.Equal(t, "Kubernetes experience required.", text)
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "analytics")
}
