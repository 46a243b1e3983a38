package postgre

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow copies values into Scan destinations the way database/sql would for simple types.
type fakeRow struct {
	values []any
}

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *float64:
			*p = f.values[i].(float64)
		case *int:
			*p = f.values[i].(int)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *time.Time:
			*p = f.values[i].(time.Time)
		case *sql.NullString:
			if v, ok := f.values[i].(string); ok {
				*p = sql.NullString{String: v, Valid: true}
			}
		case *sql.NullFloat64:
			if v, ok := f.values[i].(float64); ok {
				*p = sql.NullFloat64{Float64: v, Valid: true}
			}
		case *sql.NullInt64:
			if v, ok := f.values[i].(int64); ok {
				*p = sql.NullInt64{Int64: v, Valid: true}
			}
		case sql.Scanner:
			if err := p.Scan(f.values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanNode(t *testing.T) {
	now := time.Now()
	meta, err := json.Marshal(model.NodeMetadata{AnalysisVersion: "1.0.0", ContentType: "educational", ConfidenceScore: 0.8})
	require.NoError(t, err)

	row := fakeRow{values: []any{
		"row-2", "vid1", "vid1_1_abcd1234", "row-1", "kafka", "summary",
		10.0, 20.0, "topic", 1, []byte("{kafka,broker}"),
		400.0, 200.0, 0.9, nil, int64(12),
		meta, now, now,
	}}

	n, err := scanNode(row)
	require.NoError(t, err)
	assert.Equal(t, "row-2", n.ID)
	require.NotNil(t, n.ParentID)
	assert.Equal(t, "row-1", *n.ParentID)
	assert.Equal(t, []string{"kafka", "broker"}, n.Keywords)
	require.NotNil(t, n.Confidence)
	assert.Equal(t, 0.9, *n.Confidence)
	assert.Nil(t, n.Importance)
	require.NotNil(t, n.WordCount)
	assert.Equal(t, 12, *n.WordCount)
	assert.Equal(t, "educational", n.AnalysisMetadata.ContentType)
}

func TestInsertArgs(t *testing.T) {
	conf := 0.5
	args := insertArgs("vid1", 3, analysis.Node{ID: "n1", Content: "root", NodeType: analysis.NodeTypeRoot, Confidence: &conf}, []byte("{}"))
	require.Len(t, args, 16)
	assert.Equal(t, "vid1", args[0])
	assert.Equal(t, "n1", args[1])
	assert.Equal(t, "root", args[6])
	assert.Equal(t, sql.NullFloat64{Float64: 0.5, Valid: true}, args[11])
	assert.Equal(t, sql.NullFloat64{}, args[12])
	assert.Equal(t, sql.NullInt64{}, args[13])
	assert.Equal(t, 3, args[15])
}

func TestInsertQueryCoversArgs(t *testing.T) {
	q := buildInsertNodeQuery()
	assert.Contains(t, q, "node_index)")
	assert.Contains(t, q, "$16)")
	assert.NotContains(t, q, "$17")
}

func TestListByVideoKeepsGenerationOrder(t *testing.T) {
	q := buildListByVideoQuery()
	assert.True(t, strings.HasSuffix(q, "ORDER BY node_index ASC"))
	assert.NotContains(t, q, "timestamp_start ASC")
}
