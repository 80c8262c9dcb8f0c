package pagelens_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCatalog_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves entry order", func(t *testing.T) {
		t.Parallel()

		catalog := &pagelens.LinkCatalog{Entries: []pagelens.CatalogEntry{
			{URL: "https://example.com/z", Description: "Zed"},
			{URL: "https://example.com/a", Description: "Ay"},
		}}

		data, err := json.Marshal(catalog)

		require.NoError(t, err)
		assert.Equal(t, `{"https://example.com/z":"Zed","https://example.com/a":"Ay"}`, string(data))
	})

	t.Run("encodes empty catalog as empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&pagelens.LinkCatalog{})

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("escapes keys and values", func(t *testing.T) {
		t.Parallel()

		catalog := &pagelens.LinkCatalog{Entries: []pagelens.CatalogEntry{
			{URL: `https://example.com/?q="x"`, Description: "a\nb"},
		}}

		data, err := json.Marshal(catalog)

		require.NoError(t, err)
		var decoded map[string]string
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "a\nb", decoded[`https://example.com/?q="x"`])
	})
}

func TestLinkCatalog_Get(t *testing.T) {
	t.Parallel()

	catalog := &pagelens.LinkCatalog{Entries: []pagelens.CatalogEntry{
		{URL: "https://example.com/a", Description: "Ay"},
	}}

	desc, ok := catalog.Get("https://example.com/a")
	assert.True(t, ok)
	assert.Equal(t, "Ay", desc)

	_, ok = catalog.Get("https://example.com/missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"https://example.com/a"}, catalog.URLs())
}

func TestCatalogOptions_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("clamps values below range", func(t *testing.T) {
		t.Parallel()

		opts := pagelens.CatalogOptions{MaxLinks: 0, EnrichLimit: -4}.Normalize()

		assert.Equal(t, 1, opts.MaxLinks)
		assert.Equal(t, 1, opts.EnrichLimit)
	})

	t.Run("clamps values above range", func(t *testing.T) {
		t.Parallel()

		opts := pagelens.CatalogOptions{MaxLinks: 5000, EnrichLimit: 51}.Normalize()

		assert.Equal(t, 200, opts.MaxLinks)
		assert.Equal(t, 50, opts.EnrichLimit)
	})

	t.Run("keeps values in range and flags untouched", func(t *testing.T) {
		t.Parallel()

		in := pagelens.CatalogOptions{MaxLinks: 7, EnrichLimit: 3, UseAnchorText: true, Enrich: true}
		opts := in.Normalize()

		assert.Equal(t, in, opts)
	})
}

func TestDefaultCatalogOptions(t *testing.T) {
	t.Parallel()

	opts := pagelens.DefaultCatalogOptions()

	assert.Equal(t, 50, opts.MaxLinks)
	assert.Equal(t, 10, opts.EnrichLimit)
	assert.True(t, opts.UseAnchorText)
	assert.True(t, opts.UseTitleAttr)
	assert.False(t, opts.Enrich)
}
