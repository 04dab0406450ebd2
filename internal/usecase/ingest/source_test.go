package ingest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/internal/domain/entity"
	"newswire/internal/usecase/ingest"
	"newswire/tests/fixtures"
)

func TestBuildSource_valid(t *testing.T) {
	sink := &recordingSink{}
	parser := ingest.NewParser(sink)

	got := parser.BuildSource(context.Background(), fixtures.ValidSource())

	require.NotNil(t, got)
	require.NotNil(t, got.ID)
	assert.Equal(t, "reuters", *got.ID)
	assert.Equal(t, "Reuters", got.Name)
	assert.Empty(t, sink.all())
}

func TestBuildSource_nullID(t *testing.T) {
	sink := &recordingSink{}
	parser := ingest.NewParser(sink)

	got := parser.BuildSource(context.Background(), fixtures.NullIDSource())

	require.NotNil(t, got)
	assert.Nil(t, got.ID, "null id stays unset")
	assert.Equal(t, "The Plainfield Gazette", got.Name)
	assert.Empty(t, sink.all())
}

func TestBuildSource_extraKeysIgnored(t *testing.T) {
	parser := ingest.NewParser(&recordingSink{})

	got := parser.BuildSource(context.Background(), map[string]any{
		"id":       "bbc-news",
		"name":     "BBC News",
		"category": "general",
	})

	require.NotNil(t, got)
	assert.Equal(t, &entity.Source{ID: strPtr("bbc-news"), Name: "BBC News"}, got)
}

func TestBuildSource_malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{
			name: "not a mapping",
			raw:  "reuters",
		},
		{
			name: "nil fragment",
			raw:  nil,
		},
		{
			name: "missing id key",
			raw:  map[string]any{"name": "Reuters"},
		},
		{
			name: "missing name key",
			raw:  map[string]any{"id": "reuters"},
		},
		{
			name: "name is not a string",
			raw:  map[string]any{"id": "reuters", "name": float64(7)},
		},
		{
			name: "name is null",
			raw:  map[string]any{"id": "reuters", "name": nil},
		},
		{
			name: "id is not a string",
			raw:  map[string]any{"id": float64(3), "name": "Reuters"},
		},
		{
			name: "empty mapping",
			raw:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			parser := ingest.NewParser(sink)

			got := parser.BuildSource(context.Background(), tt.raw)

			assert.Nil(t, got)
			events := sink.all()
			require.Len(t, events, 1)
			assert.Equal(t, ingest.KindSourceMalformed, events[0].Kind)
			assert.Equal(t, tt.raw, events[0].Raw, "event must carry the offending fragment")
		})
	}
}

func strPtr(s string) *string { return &s }
