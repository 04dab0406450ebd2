package ingest

import (
	"context"

	"golang.org/x/sync/errgroup"

	"newswire/internal/domain/entity"
)

// assembleAllParallel fans article assembly across up to p.parallelism
// workers. Each assembly is independent and side-effect-free aside from
// emitting failure events, so the only coordination needed is writing into
// a per-index slot; compacting the slots afterwards preserves the original
// relative order of the input array.
func (p *Parser) assembleAllParallel(ctx context.Context, articles []any) []entity.ArticleRecord {
	slots := make([]*entity.ArticleRecord, len(articles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i, raw := range articles {
		g.Go(func() error {
			slots[i] = p.BuildArticleRecord(ctx, raw)
			return nil
		})
	}
	// Workers never return errors; malformed items are skipped.
	_ = g.Wait()

	records := make([]entity.ArticleRecord, 0, len(articles))
	for _, record := range slots {
		if record != nil {
			records = append(records, *record)
		}
	}
	return records
}
