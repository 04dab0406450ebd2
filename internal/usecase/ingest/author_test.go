package ingest_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/internal/domain/entity"
	"newswire/internal/usecase/ingest"
)

// recordingSink captures every failure event for assertions. Shared by the
// builder and classifier tests in this package.
type recordingSink struct {
	mu     sync.Mutex
	events []ingest.FailureEvent
}

func (r *recordingSink) Emit(_ context.Context, event ingest.FailureEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingSink) all() []ingest.FailureEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ingest.FailureEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingSink) kinds() []ingest.FailureKind {
	var kinds []ingest.FailureKind
	for _, event := range r.all() {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func TestBuildAuthor(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		want      *entity.Author
		wantEvent bool
	}{
		{
			name: "two tokens",
			raw:  "Jane Doe",
			want: &entity.Author{FirstName: "Jane", LastName: "Doe"},
		},
		{
			name: "surrounding and repeated whitespace collapses",
			raw:  "  Jane \t  Doe  ",
			want: &entity.Author{FirstName: "Jane", LastName: "Doe"},
		},
		{
			name: "absent author",
			raw:  nil,
			want: nil,
		},
		{
			name: "empty string carries no author",
			raw:  "",
			want: nil,
		},
		{
			name:      "single token",
			raw:       "Madonna",
			want:      nil,
			wantEvent: true,
		},
		{
			name:      "three tokens",
			raw:       "Jane Q Doe",
			want:      nil,
			wantEvent: true,
		},
		{
			name:      "whitespace only",
			raw:       "   ",
			want:      nil,
			wantEvent: true,
		},
		{
			name:      "non-string value",
			raw:       float64(42),
			want:      nil,
			wantEvent: true,
		},
		{
			name:      "list value",
			raw:       []any{"Jane", "Doe"},
			want:      nil,
			wantEvent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			parser := ingest.NewParser(sink)

			got := parser.BuildAuthor(context.Background(), tt.raw)

			assert.Equal(t, tt.want, got)
			if tt.wantEvent {
				events := sink.all()
				require.Len(t, events, 1)
				assert.Equal(t, ingest.KindAuthorMalformed, events[0].Kind)
				assert.Equal(t, tt.raw, events[0].Raw)
			} else {
				assert.Empty(t, sink.all(), "valid or absent input must not emit")
			}
		})
	}
}

func TestBuildAuthor_nilSinkDiscards(t *testing.T) {
	parser := ingest.NewParser(nil)

	assert.NotPanics(t, func() {
		got := parser.BuildAuthor(context.Background(), "OneToken")
		assert.Nil(t, got)
	})
}
