package ingest

import (
	"context"
	"strings"

	"newswire/internal/domain/entity"
)

// BuildAuthor derives an Author from the raw author field of an article
// fragment. Absent (nil) or empty input legitimately carries no author and
// returns nil without an event. Input that splits into exactly two non-empty
// whitespace-delimited tokens yields an Author; every other shape (one
// token, three or more tokens, non-string value) is rejected with a single
// author_malformed event and never fails the caller.
func (p *Parser) BuildAuthor(ctx context.Context, raw any) *entity.Author {
	if raw == nil {
		return nil
	}

	name, ok := raw.(string)
	if !ok {
		p.emit(ctx, KindAuthorMalformed, raw)
		return nil
	}
	if name == "" {
		return nil
	}

	tokens := strings.Fields(name)
	if len(tokens) != 2 {
		p.emit(ctx, KindAuthorMalformed, raw)
		return nil
	}

	return &entity.Author{FirstName: tokens[0], LastName: tokens[1]}
}
