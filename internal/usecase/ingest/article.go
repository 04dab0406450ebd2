package ingest

import (
	"context"
	"fmt"
	"time"

	"newswire/internal/domain/entity"
)

// articleFields is the strict field set of an Article. After "source" and
// "author" are peeled off, a fragment's remaining keys must be exactly this
// set for the shape to be recognized.
var articleFields = []string{"title", "description", "url", "urlToImage", "publishedAt", "content"}

// BuildArticleRecord assembles one ArticleRecord from a raw element of the
// response's articles array.
//
// The fragment must be a mapping with a "source" sub-mapping, an "author"
// key of any shape, and exactly the Article field set as its remaining keys.
// Anything else is dropped with an unrecognized_article_shape event, which
// signals a stale schema rather than bad data.
//
// On a shape match, Source and Author are built best-effort (their failures
// are absorbed by the builders) while the Article itself is strict: a
// mistyped field or unparseable timestamp drops the whole record with an
// article_malformed event, discarding any Source/Author partial successes.
// A nil return always means the item was skipped, never that the batch
// failed.
func (p *Parser) BuildArticleRecord(ctx context.Context, raw any) *entity.ArticleRecord {
	fragment, ok := raw.(map[string]any)
	if !ok {
		p.emit(ctx, KindUnrecognizedShape, raw)
		return nil
	}

	sourceRaw, hasSource := fragment["source"]
	authorRaw, hasAuthor := fragment["author"]
	if !hasSource || !hasAuthor {
		p.emit(ctx, KindUnrecognizedShape, raw)
		return nil
	}
	if _, ok := sourceRaw.(map[string]any); !ok {
		p.emit(ctx, KindUnrecognizedShape, raw)
		return nil
	}
	if !hasExactArticleFields(fragment) {
		p.emit(ctx, KindUnrecognizedShape, raw)
		return nil
	}

	source := p.BuildSource(ctx, sourceRaw)
	author := p.BuildAuthor(ctx, authorRaw)

	article, err := buildArticle(fragment)
	if err != nil {
		p.emit(ctx, KindArticleMalformed, raw)
		return nil
	}

	return &entity.ArticleRecord{
		Source:  source,
		Author:  author,
		Article: article,
	}
}

// hasExactArticleFields reports whether the fragment's keys, beyond source
// and author, are exactly the Article field set.
func hasExactArticleFields(fragment map[string]any) bool {
	if len(fragment) != len(articleFields)+2 {
		return false
	}
	for _, field := range articleFields {
		if _, ok := fragment[field]; !ok {
			return false
		}
	}
	return true
}

// buildArticle constructs the strict Article value from a shape-matched
// fragment. Every field is mandatory and type-checked; publishedAt must be
// an RFC 3339 timestamp string.
func buildArticle(fragment map[string]any) (entity.Article, error) {
	var article entity.Article
	var err error

	if article.Title, err = stringField(fragment, "title"); err != nil {
		return entity.Article{}, err
	}
	if article.Description, err = stringField(fragment, "description"); err != nil {
		return entity.Article{}, err
	}
	if article.URL, err = stringField(fragment, "url"); err != nil {
		return entity.Article{}, err
	}
	if article.URLToImage, err = stringField(fragment, "urlToImage"); err != nil {
		return entity.Article{}, err
	}
	if article.Content, err = stringField(fragment, "content"); err != nil {
		return entity.Article{}, err
	}

	publishedRaw, err := stringField(fragment, "publishedAt")
	if err != nil {
		return entity.Article{}, err
	}
	article.PublishedAt, err = time.Parse(time.RFC3339, publishedRaw)
	if err != nil {
		return entity.Article{}, fmt.Errorf("field \"publishedAt\": %w", err)
	}

	return article, nil
}

func stringField(fragment map[string]any, key string) (string, error) {
	value, ok := fragment[key].(string)
	if !ok {
		return "", fmt.Errorf("field %q: %w", key, entity.ErrInvalidInput)
	}
	return value, nil
}
