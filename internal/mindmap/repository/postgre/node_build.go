package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/model"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNode - Map one mindmap_nodes row to the model
func scanNode(row rowScanner) (model.MindMapNode, error) {
	var (
		n          model.MindMapNode
		parentID   sql.NullString
		confidence sql.NullFloat64
		importance sql.NullFloat64
		wordCount  sql.NullInt64
		metadata   []byte
	)
	err := row.Scan(
		&n.ID, &n.VideoID, &n.NodeKey, &parentID, &n.Content, &n.Summary,
		&n.TimestampStart, &n.TimestampEnd, &n.NodeType, &n.Depth, pq.Array(&n.Keywords),
		&n.PositionX, &n.PositionY, &confidence, &importance, &wordCount,
		&metadata, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.MindMapNode{}, err
	}

	if parentID.Valid {
		n.ParentID = &parentID.String
	}
	if confidence.Valid {
		n.Confidence = &confidence.Float64
	}
	if importance.Valid {
		n.Importance = &importance.Float64
	}
	if wordCount.Valid {
		wc := int(wordCount.Int64)
		n.WordCount = &wc
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &n.AnalysisMetadata); err != nil {
			return model.MindMapNode{}, fmt.Errorf("decode analysis_metadata: %w", err)
		}
	}
	if n.Keywords == nil {
		n.Keywords = []string{}
	}
	return n, nil
}

// insertArgs - Positional args for buildInsertNodeQuery; index is the node's position in the generated list
func insertArgs(videoID string, index int, n analysis.Node, metadata []byte) []any {
	keywords := n.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return []any{
		videoID, n.ID, n.Content, n.Summary, n.TimestampStart, n.TimestampEnd,
		string(n.NodeType), n.Depth, pq.Array(keywords), n.PositionX, n.PositionY,
		nullFloat(n.Confidence), nullFloat(n.Importance), nullInt(n.WordCount), metadata, index,
	}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
