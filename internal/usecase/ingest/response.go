package ingest

import (
	"context"
	"encoding/json"
	"math"

	"newswire/internal/domain/entity"
)

// ParseResponse classifies a decoded top-level API document and assembles
// its records. Every input lands in exactly one of three branches:
//
//  1. Success shape (status "ok" with an integer totalResults and an
//     articles list): each article fragment is assembled best-effort and
//     survivors are collected in original order. Per-item failures never
//     fail this branch.
//  2. Reported-error shape (status "error" with code and message): fails
//     with a ResponseError surfacing the upstream code and message verbatim.
//  3. Anything else: fails with a ResponseError carrying the raw payload.
//
// Construction is all-or-nothing at the top level: on branches 2 and 3 the
// caller receives no partial result.
func (p *Parser) ParseResponse(ctx context.Context, raw any) (*entity.APIResult, error) {
	document, ok := raw.(map[string]any)
	if !ok {
		return nil, newUnrecognizedError(raw)
	}

	switch document["status"] {
	case "ok":
		total, okTotal := intField(document, "totalResults")
		articles, okList := document["articles"].([]any)
		if okTotal && okList {
			return entity.NewAPIResult(
				entity.Metadata{TotalResults: total},
				p.assembleAll(ctx, articles),
			), nil
		}
	case "error":
		code, hasCode := document["code"]
		message, hasMessage := document["message"]
		if hasCode && hasMessage {
			return nil, newAPIError(code, message)
		}
	}

	return nil, newUnrecognizedError(raw)
}

// assembleAll maps every element of the articles array through the
// assembler, keeping survivors in their original relative order.
func (p *Parser) assembleAll(ctx context.Context, articles []any) []entity.ArticleRecord {
	if p.parallelism > 1 && len(articles) > 1 {
		return p.assembleAllParallel(ctx, articles)
	}

	records := make([]entity.ArticleRecord, 0, len(articles))
	for _, raw := range articles {
		if record := p.BuildArticleRecord(ctx, raw); record != nil {
			records = append(records, *record)
		}
	}
	return records
}

// intField extracts an integer-valued field. JSON numbers arrive as float64
// from encoding/json by default, or as json.Number when the decoder is
// configured with UseNumber; both are accepted when integral.
func intField(document map[string]any, key string) (int, bool) {
	switch value := document[key].(type) {
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int(value), true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case int:
		return value, true
	}
	return 0, false
}
