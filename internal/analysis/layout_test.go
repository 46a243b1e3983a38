package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutApply(t *testing.T) {
	root := "r"
	nodes := []Node{
		{ID: "r", Depth: 0, Content: "root"},
		{ID: "t1", Depth: 1, ParentNodeID: &root},
		{ID: "d1", Depth: 2},
		{ID: "t2", Depth: 1, ParentNodeID: &root},
	}

	out := DefaultLayout.Apply(nodes)
	require.Len(t, out, 4)

	assert.Equal(t, 400.0, out[0].PositionX)
	assert.Equal(t, 50.0, out[0].PositionY)
	assert.InDelta(t, 800.0/3, out[1].PositionX, 1e-9)
	assert.InDelta(t, 1600.0/3, out[3].PositionX, 1e-9)
	assert.Equal(t, 200.0, out[1].PositionY)
	assert.Equal(t, 400.0, out[2].PositionX)
	assert.Equal(t, 350.0, out[2].PositionY)

	// input untouched, other fields copied
	assert.Zero(t, nodes[1].PositionX)
	assert.Equal(t, "root", out[0].Content)
	assert.Equal(t, &root, out[1].ParentNodeID)
}

func TestAggregateConfidence(t *testing.T) {
	assert.Equal(t, DefaultConfidenceScore, AggregateConfidence(nil))
	assert.Equal(t, DefaultConfidenceScore, AggregateConfidence([]Node{{ID: "a"}}))

	nodes := []Node{{Confidence: ptr(0.9)}, {}, {Confidence: ptr(0.5)}}
	assert.InDelta(t, 0.7, AggregateConfidence(nodes), 1e-9)
}

func TestStatistics(t *testing.T) {
	nodes := []Node{
		{NodeType: NodeTypeRoot},
		{NodeType: NodeTypeTopic, Depth: 1},
		{NodeType: NodeTypeDetail, Depth: 2},
		{NodeType: NodeTypeDetail, Depth: 2},
	}

	st := ComputeStatistics(nodes)
	assert.Equal(t, 4, st.TotalNodes)
	assert.Equal(t, 1, st.RootNodes)
	assert.Equal(t, 2, st.MaxDepth)
	assert.Equal(t, map[NodeType]int{NodeTypeRoot: 1, NodeTypeTopic: 1, NodeTypeDetail: 2}, st.NodeTypes)
}

func TestEstimateProcessingTime(t *testing.T) {
	assert.InDelta(t, 3.0, EstimateProcessingTime(10, 600, true), 1e-9)
	assert.InDelta(t, 5.0, EstimateProcessingTime(100, 600, true), 1e-9)
	assert.InDelta(t, 15.0, EstimateProcessingTime(10, 600, false), 1e-9)
	assert.InDelta(t, 60.0, EstimateProcessingTime(200, 3600, false), 1e-9)
}
