package goquery_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse(pageURL)
	require.NoError(t, err)
	return u
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty cleaned value", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<html><head></head></html>`)

		got := goquery.FirstNonEmpty(d,
			goquery.Const(""),
			goquery.Const("   "),
			goquery.Const("  second\n value "),
			goquery.Const("third"),
		)

		assert.Equal(t, "second value", got)
	})

	t.Run("returns empty when every lookup misses", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<html></html>`)

		assert.Empty(t, goquery.FirstNonEmpty(d, goquery.MetaName("description")))
	})

	t.Run("skips meta elements with empty content", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><meta name="author" content=""><meta name="author" content="Jane"></head>`)

		assert.Equal(t, "Jane", goquery.FirstNonEmpty(d, goquery.MetaName("author")))
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><title>Plain</title><meta property="og:title" content="Open Graph"></head>`)

		assert.Equal(t, "Open Graph", goquery.Title(d))
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><title>  Plain &amp; Simple </title></head>`)

		assert.Equal(t, "Plain & Simple", goquery.Title(d))
	})
}

func TestDescription(t *testing.T) {
	t.Parallel()

	d := doc(t, `<head><meta property="og:description" content=""><meta name="description" content="Meta desc"></head>`)

	assert.Equal(t, "Meta desc", goquery.Description(d))
}

func TestSiteName(t *testing.T) {
	t.Parallel()

	t.Run("uses og:site_name", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><meta property="og:site_name" content="Example Blog"></head>`)

		assert.Equal(t, "Example Blog", goquery.SiteName(d, base(t)))
	})

	t.Run("falls back to host", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "example.com", goquery.SiteName(doc(t, `<p>x</p>`), base(t)))
	})
}

func TestURLFields(t *testing.T) {
	t.Parallel()

	t.Run("resolves canonical against the page", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><link rel="canonical" href="/blog/post?ref=1"></head>`)

		assert.Equal(t, "https://example.com/blog/post?ref=1", goquery.Canonical(d, base(t)))
	})

	t.Run("resolves favicon in declared order", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head>
<link rel="apple-touch-icon" href="/apple.png">
<link rel="shortcut icon" href="favicon.ico">
</head>`)

		assert.Equal(t, "https://example.com/blog/favicon.ico", goquery.Favicon(d, base(t)))
	})

	t.Run("falls back to apple touch icon", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><link rel="apple-touch-icon" href="/apple.png"></head>`)

		assert.Equal(t, "https://example.com/apple.png", goquery.Favicon(d, base(t)))
	})

	t.Run("returns empty for missing links", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head></head>`)

		assert.Empty(t, goquery.Canonical(d, base(t)))
		assert.Empty(t, goquery.Favicon(d, base(t)))
	})
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en-us", goquery.Language(doc(t, `<html lang="EN-US"><body></body></html>`)))
	assert.Empty(t, goquery.Language(doc(t, `<html><body></body></html>`)))
}

func TestAuthor(t *testing.T) {
	t.Parallel()

	t.Run("prefers meta author", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><meta name="author" content="Meta Author"></head><body><span class="byline">By Someone</span></body>`)

		assert.Equal(t, "Meta Author", goquery.Author(d))
	})

	t.Run("reads microdata text", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<body><span itemprop="author"> Jane  Doe </span><span class="byline">By Someone</span></body>`)

		assert.Equal(t, "Jane Doe", goquery.Author(d))
	})

	t.Run("falls back to byline classes", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<body><div class="post-author">Post Author</div></body>`)

		assert.Equal(t, "Post Author", goquery.Author(d))
	})
}

func TestPublished(t *testing.T) {
	t.Parallel()

	t.Run("prefers article:published_time", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head>
<meta name="date" content="2023-01-01">
<meta property="article:published_time" content="2024-05-06T07:08:09Z">
</head>`)

		assert.Equal(t, "2024-05-06T07:08:09Z", goquery.Published(d))
	})

	t.Run("reads datePublished datetime attribute", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<body><time itemprop="datePublished" datetime="2024-02-03">Feb 3</time></body>`)

		assert.Equal(t, "2024-02-03", goquery.Published(d))
	})

	t.Run("falls back to first time element", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<body><time>no attribute</time><time datetime="2022-12-31">Dec 31</time></body>`)

		assert.Equal(t, "2022-12-31", goquery.Published(d))
	})
}

func TestTags(t *testing.T) {
	t.Parallel()

	t.Run("merges keywords and tag links without duplicates", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head><meta name="keywords" content="go, web , ,scraping"></head>
<body>
<div class="tags"><a href="/t/go">go</a><a href="/t/html">html</a></div>
<a rel="tag" href="/t/css">css</a>
<ul class="post-tags"><li><a href="/t/web">web</a></li></ul>
</body>`)

		assert.Equal(t, []string{"go", "web", "scraping", "html", "css"}, goquery.Tags(d))
	})

	t.Run("returns empty slice without tags", func(t *testing.T) {
		t.Parallel()

		tags := goquery.Tags(doc(t, `<p>x</p>`))

		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})
}

func TestOpenGraphAndTwitter(t *testing.T) {
	t.Parallel()

	t.Run("resolves image URLs and falls back to page URL", func(t *testing.T) {
		t.Parallel()

		d := doc(t, `<head>
<meta property="og:image" content="/img/cover.png">
<meta property="og:type" content="article">
<meta property="twitter:card" content="summary">
<meta name="twitter:title" content="Name Title">
<meta property="twitter:title" content="Property Title">
<meta name="twitter:image" content="//cdn.example.com/t.png">
</head>`)

		og := goquery.OpenGraph(d, base(t), pageURL)
		tw := goquery.Twitter(d, base(t))

		assert.Equal(t, "https://example.com/img/cover.png", og.Image)
		assert.Equal(t, "article", og.Type)
		assert.Equal(t, pageURL, og.URL)
		assert.Equal(t, "summary", tw.Card)
		assert.Equal(t, "Name Title", tw.Title)
		assert.Equal(t, "https://cdn.example.com/t.png", tw.Image)
		assert.Empty(t, tw.Description)
	})
}
