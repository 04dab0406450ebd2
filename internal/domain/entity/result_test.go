package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/internal/domain/entity"
)

func sampleRecords() []entity.ArticleRecord {
	id := "wire-service"
	return []entity.ArticleRecord{
		{
			Source: &entity.Source{ID: &id, Name: "Wire Service"},
			Author: &entity.Author{FirstName: "Sam", LastName: "Reed"},
			Article: entity.Article{
				Title:       "first",
				URL:         "https://news.example.com/1",
				PublishedAt: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			Article: entity.Article{
				Title:       "second",
				URL:         "https://news.example.com/2",
				PublishedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestNewAPIResult_copiesInput(t *testing.T) {
	records := sampleRecords()
	result := entity.NewAPIResult(entity.Metadata{TotalResults: 2}, records)

	records[0].Article.Title = "mutated after construction"

	assert.Equal(t, "first", result.Records()[0].Article.Title,
		"mutating the input slice must not reach the result")
}

func TestAPIResult_recordsReturnsCopy(t *testing.T) {
	result := entity.NewAPIResult(entity.Metadata{TotalResults: 2}, sampleRecords())

	first := result.Records()
	first[1].Article.Title = "mutated snapshot"

	assert.Equal(t, "second", result.Records()[1].Article.Title)
}

func TestAPIResult_accessors(t *testing.T) {
	result := entity.NewAPIResult(entity.Metadata{TotalResults: 40}, sampleRecords())

	assert.Equal(t, 40, result.Metadata().TotalResults)
	assert.Equal(t, 2, result.Len())
	require.Len(t, result.Records(), 2)
	assert.Equal(t, "first", result.Records()[0].Article.Title)
}

func TestAPIResult_empty(t *testing.T) {
	result := entity.NewAPIResult(entity.Metadata{}, nil)

	assert.Equal(t, 0, result.Len())
	assert.Empty(t, result.Records())
}

func TestValidationError_message(t *testing.T) {
	err := &entity.ValidationError{Field: "publishedAt", Message: "not an RFC 3339 timestamp"}

	assert.Contains(t, err.Error(), "publishedAt")
	assert.Contains(t, err.Error(), "RFC 3339")
}

func TestSentinelErrors(t *testing.T) {
	wrapped := errors.Join(entity.ErrInvalidInput)
	assert.True(t, errors.Is(wrapped, entity.ErrInvalidInput))
	assert.NotErrorIs(t, entity.ErrInvalidInput, entity.ErrValidationFailed)
}
