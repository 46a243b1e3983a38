package postgre

import "fmt"

const nodeColumns = `id, video_id, node_key, parent_id, content, summary, timestamp_start, timestamp_end,
	node_type, depth, keywords, position_x, position_y, confidence, importance, word_count,
	analysis_metadata, created_at, updated_at`

// buildInsertNodeQuery - Insert one node without its parent; parents are linked in a second pass
func buildInsertNodeQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (video_id, node_key, parent_id, content, summary, timestamp_start, timestamp_end,
	node_type, depth, keywords, position_x, position_y, confidence, importance, word_count, analysis_metadata, node_index)
VALUES ($1, $2, NULL, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING %s`, tableNodes, nodeColumns)
}

func buildLinkParentQuery() string {
	return fmt.Sprintf(`UPDATE %s SET parent_id = $1, updated_at = NOW() WHERE id = $2`, tableNodes)
}

func buildDeleteByVideoQuery() string {
	return fmt.Sprintf(`DELETE FROM %s WHERE video_id = $1`, tableNodes)
}

// buildListByVideoQuery - Rows come back in generation order, so parents precede children and siblings keep their rank
func buildListByVideoQuery() string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE video_id = $1 ORDER BY node_index ASC`,
		nodeColumns, tableNodes)
}

func buildCountVideosQuery() string {
	return fmt.Sprintf(`SELECT COUNT(DISTINCT video_id) FROM %s`, tableNodes)
}

func buildGetSummariesQuery() string {
	return fmt.Sprintf(`SELECT video_id,
	COUNT(*) AS nodes_count,
	COALESCE(MAX((analysis_metadata->>'confidence_score')::float8), 0) AS confidence_score,
	COALESCE(MAX(analysis_metadata->>'content_type'), '') AS content_type,
	MAX(updated_at) AS updated_at
FROM %s
GROUP BY video_id
ORDER BY MAX(updated_at) DESC, video_id ASC
LIMIT $1 OFFSET $2`, tableNodes)
}
