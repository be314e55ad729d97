// Package rag assembles grounding context from knowledge-bucket search results.
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"omnichat/client/internal/backend"
	"omnichat/client/internal/model"
)

const (
	DefaultTopK = 5

	// maxSourceContent bounds the excerpt stored on a SourceReference.
	maxSourceContent = 400

	blockSeparator = "\n\n---\n\n"
)

// BucketSearcher queries one knowledge bucket.
type BucketSearcher interface {
	SearchBucket(ctx context.Context, bucketID, query string, topK int) ([]backend.SearchHit, error)
}

// Grounding is the retrieval result attached to an outbound request.
type Grounding struct {
	Context string
	Sources []model.SourceReference
}

type Builder struct {
	searcher BucketSearcher
	topK     int
}

func NewBuilder(searcher BucketSearcher, topK int) *Builder {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Builder{searcher: searcher, topK: topK}
}

// Build searches every selected bucket in turn and merges the hits by
// descending score. It returns nil when no bucket is selected, nothing
// matched, or any search failed; retrieval never blocks a request.
func (b *Builder) Build(ctx context.Context, query string, bucketIDs []string) *Grounding {
	if len(bucketIDs) == 0 {
		return nil
	}

	var hits []backend.SearchHit
	for _, bucketID := range bucketIDs {
		found, err := b.searcher.SearchBucket(ctx, bucketID, query, b.topK)
		if err != nil {
			slog.Warn("Knowledge search failed, continuing without context", "bucket_id", bucketID, "error", err)
			return nil
		}
		hits = append(hits, found...)
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > b.topK {
		hits = hits[:b.topK]
	}

	blocks := make([]string, 0, len(hits))
	sources := make([]model.SourceReference, 0, len(hits))
	for _, hit := range hits {
		blocks = append(blocks, fmt.Sprintf("[Source: %s, Relevance: %.1f%%]\n%s", hit.Filename, hit.Score*100, hit.Content))
		sources = append(sources, model.SourceReference{
			Filename: hit.Filename,
			Score:    hit.Score,
			Content:  truncateRunes(hit.Content, maxSourceContent),
		})
	}

	slog.Debug("Built knowledge context", "buckets", len(bucketIDs), "sources", len(sources))
	return &Grounding{
		Context: strings.Join(blocks, blockSeparator),
		Sources: sources,
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
