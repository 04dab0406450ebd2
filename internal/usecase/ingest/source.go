package ingest

import (
	"context"

	"newswire/internal/domain/entity"
)

// BuildSource constructs a Source from the raw source fragment of an
// article. The fragment must be a mapping carrying both an "id" key (string
// or null) and a "name" key (string); extra keys are ignored. Any other
// shape is rejected with a single source_malformed event and yields no
// Source. Failures here never propagate to the caller.
func (p *Parser) BuildSource(ctx context.Context, raw any) *entity.Source {
	fragment, ok := raw.(map[string]any)
	if !ok {
		p.emit(ctx, KindSourceMalformed, raw)
		return nil
	}

	idRaw, hasID := fragment["id"]
	nameRaw, hasName := fragment["name"]
	if !hasID || !hasName {
		p.emit(ctx, KindSourceMalformed, raw)
		return nil
	}

	name, ok := nameRaw.(string)
	if !ok {
		p.emit(ctx, KindSourceMalformed, raw)
		return nil
	}

	var id *string
	if idRaw != nil {
		s, ok := idRaw.(string)
		if !ok {
			p.emit(ctx, KindSourceMalformed, raw)
			return nil
		}
		id = &s
	}

	return &entity.Source{ID: id, Name: name}
}
