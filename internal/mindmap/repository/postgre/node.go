package postgre

import (
	"context"
	"encoding/json"
	"fmt"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/paginator"
)

// ReplaceNodes deletes the stored nodes of a video and inserts the new ones.
// Parent links are resolved in a second pass once every row has its id.
func (r *implRepository) ReplaceNodes(ctx context.Context, opt repository.ReplaceNodesOptions) ([]model.MindMapNode, error) {
	if opt.VideoID == "" {
		return nil, repository.ErrInvalidInput
	}

	metadata, err := json.Marshal(opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to encode metadata: %v", err)
		return nil, repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to begin tx: %v", err)
		return nil, repository.ErrFailedToInsert
	}
	defer func() { _ = tx.Rollback() }()

	// Step 1: Remove the previous map
	if _, err := tx.ExecContext(ctx, buildDeleteByVideoQuery(), opt.VideoID); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to delete old nodes for %s: %v", opt.VideoID, err)
		return nil, repository.ErrFailedToDelete
	}

	// Step 2: Insert every node without parent, remembering analysis id -> row id
	rows := make([]model.MindMapNode, 0, len(opt.Nodes))
	idMap := make(map[string]string, len(opt.Nodes))
	for i, n := range opt.Nodes {
		row, err := scanNode(tx.QueryRowContext(ctx, buildInsertNodeQuery(), insertArgs(opt.VideoID, i, n, metadata)...))
		if err != nil {
			r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to insert node %s: %v", n.ID, err)
			return nil, repository.ErrFailedToInsert
		}
		idMap[n.ID] = row.ID
		rows = append(rows, row)
	}

	// Step 3: Link parents through the id map
	for i, n := range opt.Nodes {
		if n.ParentNodeID == nil {
			continue
		}
		parentRowID, ok := idMap[*n.ParentNodeID]
		if !ok {
			r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Node %s references unknown parent %s", n.ID, *n.ParentNodeID)
			return nil, repository.ErrUnknownParent
		}
		if _, err := tx.ExecContext(ctx, buildLinkParentQuery(), parentRowID, rows[i].ID); err != nil {
			r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to link node %s: %v", n.ID, err)
			return nil, repository.ErrFailedToInsert
		}
		rows[i].ParentID = &parentRowID
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ReplaceNodes: Failed to commit: %v", err)
		return nil, repository.ErrFailedToInsert
	}

	return rows, nil
}

func (r *implRepository) ListNodes(ctx context.Context, videoID string) ([]model.MindMapNode, error) {
	rs, err := r.db.QueryContext(ctx, buildListByVideoQuery(), videoID)
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ListNodes: Failed to query nodes for %s: %v", videoID, err)
		return nil, repository.ErrFailedToList
	}
	defer rs.Close()

	var nodes []model.MindMapNode
	for rs.Next() {
		n, err := scanNode(rs)
		if err != nil {
			r.l.Errorf(ctx, "mindmap.repository.postgre.ListNodes: Failed to scan node: %v", err)
			return nil, repository.ErrFailedToList
		}
		nodes = append(nodes, n)
	}
	if err := rs.Err(); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.ListNodes: Row iteration failed: %v", err)
		return nil, repository.ErrFailedToList
	}
	return nodes, nil
}

func (r *implRepository) DeleteNodes(ctx context.Context, videoID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, buildDeleteByVideoQuery(), videoID)
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.DeleteNodes: Failed to delete nodes for %s: %v", videoID, err)
		return 0, repository.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, repository.ErrFailedToDelete
	}
	return affected, nil
}

func (r *implRepository) GetSummaries(ctx context.Context, opt repository.GetSummariesOptions) ([]model.MindMapSummary, paginator.Paginator, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, buildCountVideosQuery()).Scan(&total); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.GetSummaries: Failed to count videos: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToCount
	}

	rs, err := r.db.QueryContext(ctx, buildGetSummariesQuery(), opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.postgre.GetSummaries: Failed to query summaries: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}
	defer rs.Close()

	summaries := make([]model.MindMapSummary, 0, opt.Limit)
	for rs.Next() {
		var s model.MindMapSummary
		if err := rs.Scan(&s.VideoID, &s.NodesCount, &s.ConfidenceScore, &s.ContentType, &s.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "mindmap.repository.postgre.GetSummaries: Failed to scan summary: %v", err)
			return nil, paginator.Paginator{}, repository.ErrFailedToList
		}
		summaries = append(summaries, s)
	}
	if err := rs.Err(); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	return summaries, paginator.Paginator{
		Total:       total,
		Count:       int64(len(summaries)),
		PerPage:     opt.Limit,
		CurrentPage: opt.Page,
	}, nil
}
