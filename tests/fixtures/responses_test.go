package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/tests/fixtures"
)

func TestValidArticle_overrides(t *testing.T) {
	fragment := fixtures.ValidArticle(map[string]any{
		"author": nil,
		"title":  "Override",
	})

	title, ok := fragment["title"].(string)
	require.True(t, ok)
	assert.Equal(t, "Override", title)

	author, hasAuthor := fragment["author"]
	assert.True(t, hasAuthor, "overridden key must stay present")
	assert.Nil(t, author)
}

func TestValidArticle_independentCopies(t *testing.T) {
	first := fixtures.ValidArticle(nil)
	second := fixtures.ValidArticle(nil)

	first["title"] = "mutated"
	assert.NotEqual(t, first["title"], second["title"])
}

func TestHeadlinesResponse_shape(t *testing.T) {
	document := fixtures.HeadlinesResponse(2, fixtures.ValidArticle(nil), fixtures.ValidArticle(nil))

	assert.Equal(t, "ok", document["status"])
	assert.Equal(t, float64(2), document["totalResults"], "totalResults must decode-match encoding/json")

	articles, ok := document["articles"].([]any)
	require.True(t, ok)
	assert.Len(t, articles, 2)
}

func TestFromJSON_roundTrip(t *testing.T) {
	document := fixtures.FromJSON(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`)

	asMap, ok := document.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "apiKeyInvalid", asMap["code"])
}

func TestFromJSON_panicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { fixtures.FromJSON("{not json") })
}
