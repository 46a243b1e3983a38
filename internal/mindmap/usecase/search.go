package usecase

import (
	"context"
	"strings"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
)

// Search - Keyword vector search over indexed nodes
func (uc *implUseCase) Search(ctx context.Context, ip mindmap.SearchInput) (mindmap.SearchOutput, error) {
	ip.Query = strings.TrimSpace(ip.Query)
	if ip.Query == "" {
		return mindmap.SearchOutput{}, mindmap.ErrEmptyQuery
	}
	if ip.Limit <= 0 {
		ip.Limit = mindmap.DefaultSearchLimit
	}
	if ip.Limit > mindmap.MaxSearchLimit {
		ip.Limit = mindmap.MaxSearchLimit
	}

	hits, err := uc.vector.Search(ctx, repository.SearchOptions{
		Query:   ip.Query,
		VideoID: strings.TrimSpace(ip.VideoID),
		Limit:   uint64(ip.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Search: Failed to search %q: %v", ip.Query, err)
		return mindmap.SearchOutput{}, mindmap.ErrSearchFailed
	}

	results := make([]mindmap.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, mindmap.SearchResult{
			NodeID:         h.NodeID,
			VideoID:        h.VideoID,
			Content:        h.Content,
			NodeType:       analysis.NodeType(h.NodeType),
			Depth:          h.Depth,
			Keywords:       h.Keywords,
			TimestampStart: h.TimestampStart,
			TimestampEnd:   h.TimestampEnd,
			Score:          h.Score,
		})
	}

	return mindmap.SearchOutput{Query: ip.Query, Results: results}, nil
}
