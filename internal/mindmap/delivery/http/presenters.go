package http

import (
	"strings"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/paginator"
	"mindmap-srv/pkg/response"
	"mindmap-srv/pkg/util"
)

// ============================================
// Requests
// ============================================

type segmentReq struct {
	StartTime  float64  `json:"start_time"`
	EndTime    float64  `json:"end_time"`
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type generateReq struct {
	VideoID             string       `json:"video_id" binding:"required"`
	Segments            []segmentReq `json:"segments"`
	TranscriptObject    string       `json:"transcript_object"`
	Language            string       `json:"language"`
	Duration            float64      `json:"duration"`
	ContentType         string       `json:"content_type"`
	MaxDepth            *int         `json:"max_depth"`
	ImportanceThreshold *float64     `json:"importance_threshold"`
	ConfidenceThreshold *float64     `json:"confidence_threshold"`
	Dedup               *bool        `json:"dedup"`
	UseMock             *bool        `json:"use_mock"`
	Seed                *int64       `json:"seed"`
	Force               bool         `json:"force"`
}

func (r generateReq) validate() error {
	if err := util.IsVideoID(strings.TrimSpace(r.VideoID)); err != nil {
		return errInvalidVideoID
	}
	if len(r.Segments) == 0 && strings.TrimSpace(r.TranscriptObject) == "" {
		return errEmptyTranscript
	}
	if r.ContentType != "" {
		if _, ok := analysis.ParseContentType(r.ContentType); !ok {
			return errInvalidContentType
		}
	}
	return nil
}

func (r generateReq) toInput() mindmap.GenerateInput {
	segments := util.MapSlice(r.Segments, func(s segmentReq) analysis.TranscriptSegment {
		return analysis.TranscriptSegment{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Text:       s.Text,
			Confidence: s.Confidence,
		}
	})

	ov := mindmap.ConfigOverrides{
		MaxDepth:            r.MaxDepth,
		ImportanceThreshold: r.ImportanceThreshold,
		ConfidenceThreshold: r.ConfidenceThreshold,
		Dedup:               r.Dedup,
	}
	if ct, ok := analysis.ParseContentType(r.ContentType); ok {
		ov.ContentType = &ct
	}
	if r.Language != "" {
		lang := r.Language
		ov.Language = &lang
	}

	return mindmap.GenerateInput{
		VideoID:          strings.TrimSpace(r.VideoID),
		Segments:         segments,
		TranscriptObject: r.TranscriptObject,
		Language:         r.Language,
		Duration:         r.Duration,
		Overrides:        ov,
		UseMock:          r.UseMock,
		Seed:             r.Seed,
		Force:            r.Force,
	}
}

type getReq struct {
	VideoID string
}

type listReq struct {
	Page  int   `form:"page"`
	Limit int64 `form:"limit"`
}

func (r listReq) toInput() mindmap.ListInput {
	pq := paginator.PaginateQuery{Page: r.Page, Limit: r.Limit}
	pq.Adjust()
	return mindmap.ListInput{Paginate: pq}
}

type searchReq struct {
	Query   string `form:"q" binding:"required"`
	VideoID string `form:"video_id"`
	Limit   int    `form:"limit"`
}

func (r searchReq) toInput() mindmap.SearchInput {
	return mindmap.SearchInput{Query: r.Query, VideoID: r.VideoID, Limit: r.Limit}
}

type topicsReq struct {
	Content   string `json:"content" binding:"required"`
	MaxTopics int    `json:"max_topics"`
	UseMock   *bool  `json:"use_mock"`
}

func (r topicsReq) toInput() mindmap.ExtractTopicsInput {
	return mindmap.ExtractTopicsInput{Content: r.Content, MaxTopics: r.MaxTopics, UseMock: r.UseMock}
}

type summarizeReq struct {
	Content   string `json:"content" binding:"required"`
	MaxLength int    `json:"max_length"`
	UseMock   *bool  `json:"use_mock"`
}

func (r summarizeReq) toInput() mindmap.SummarizeInput {
	return mindmap.SummarizeInput{Content: r.Content, MaxLength: r.MaxLength, UseMock: r.UseMock}
}

type estimateReq struct {
	SegmentsCount int     `json:"segments_count"`
	Duration      float64 `json:"duration"`
	UseMock       *bool   `json:"use_mock"`
}

func (r estimateReq) toInput() mindmap.EstimateInput {
	return mindmap.EstimateInput{SegmentsCount: r.SegmentsCount, Duration: r.Duration, UseMock: r.UseMock}
}

type exportReq struct {
	VideoID string `json:"-"`
	Format  string `json:"format"`
}

func (r exportReq) toInput() mindmap.ExportInput {
	return mindmap.ExportInput{VideoID: r.VideoID, Format: r.Format}
}

// ============================================
// Responses
// ============================================

type nodeResp struct {
	ID             string   `json:"id"`
	ParentNodeID   *string  `json:"parent_node_id"`
	Content        string   `json:"content"`
	Summary        string   `json:"summary"`
	TimestampStart float64  `json:"timestamp_start"`
	TimestampEnd   float64  `json:"timestamp_end"`
	NodeType       string   `json:"node_type"`
	Depth          int      `json:"depth"`
	Keywords       []string `json:"keywords"`
	PositionX      float64  `json:"position_x"`
	PositionY      float64  `json:"position_y"`
	Confidence     *float64 `json:"confidence"`
	Importance     *float64 `json:"importance"`
	WordCount      *int     `json:"word_count"`
	Children       []string `json:"children"`
}

type statisticsResp struct {
	TotalNodes int            `json:"total_nodes"`
	RootNodes  int            `json:"root_nodes"`
	MaxDepth   int            `json:"max_depth"`
	NodeTypes  map[string]int `json:"node_types"`
}

type mindMapResp struct {
	VideoID         string            `json:"video_id"`
	ContentType     string            `json:"content_type"`
	ConfidenceScore float64           `json:"confidence_score"`
	Nodes           []nodeResp        `json:"nodes"`
	Statistics      statisticsResp    `json:"statistics"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

type generateResp struct {
	MindMap          mindMapResp    `json:"mind_map"`
	AnalysisMetadata map[string]any `json:"analysis_metadata,omitempty"`
	ProcessingTime   float64        `json:"processing_time"`
	Analyzer         string         `json:"analyzer,omitempty"`
	Reused           bool           `json:"reused"`
}

type summaryResp struct {
	VideoID         string            `json:"video_id"`
	NodesCount      int               `json:"nodes_count"`
	ConfidenceScore float64           `json:"confidence_score"`
	ContentType     string            `json:"content_type"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

type listResp struct {
	MindMaps  []summaryResp               `json:"mind_maps"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type searchResultResp struct {
	NodeID         string   `json:"node_id"`
	VideoID        string   `json:"video_id"`
	Content        string   `json:"content"`
	NodeType       string   `json:"node_type"`
	Depth          int      `json:"depth"`
	Keywords       []string `json:"keywords"`
	TimestampStart float64  `json:"timestamp_start"`
	TimestampEnd   float64  `json:"timestamp_end"`
	Score          float32  `json:"score"`
}

type searchResp struct {
	Query   string             `json:"query"`
	Results []searchResultResp `json:"results"`
}

type topicsResp struct {
	Topics   []string `json:"topics"`
	Keywords []string `json:"keywords"`
}

type summarizeResp struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

type estimateResp struct {
	SegmentsCount    int     `json:"segments_count"`
	DurationSeconds  float64 `json:"duration_seconds"`
	EstimatedSeconds float64 `json:"estimated_processing_time_seconds"`
	UsingMock        bool    `json:"using_mock"`
}

type statusResp struct {
	ServiceName           string          `json:"service_name"`
	UsingMock             bool            `json:"using_mock"`
	AnalyzerType          string          `json:"analyzer_type"`
	Features              map[string]bool `json:"features"`
	SupportedContentTypes []string        `json:"supported_content_types"`
	MaxDepth              int             `json:"max_depth"`
	Version               string          `json:"version"`
}

type exportResp struct {
	VideoID    string            `json:"video_id"`
	ObjectName string            `json:"object_name"`
	Format     string            `json:"format"`
	Size       int64             `json:"size"`
	URL        string            `json:"url"`
	ExpiresAt  response.DateTime `json:"expires_at"`
}

func toNodeResp(n analysis.Node) nodeResp {
	keywords := n.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	children := n.Children
	if children == nil {
		children = []string{}
	}
	return nodeResp{
		ID:             n.ID,
		ParentNodeID:   n.ParentNodeID,
		Content:        n.Content,
		Summary:        n.Summary,
		TimestampStart: n.TimestampStart,
		TimestampEnd:   n.TimestampEnd,
		NodeType:       string(n.NodeType),
		Depth:          n.Depth,
		Keywords:       keywords,
		PositionX:      n.PositionX,
		PositionY:      n.PositionY,
		Confidence:     n.Confidence,
		Importance:     n.Importance,
		WordCount:      n.WordCount,
		Children:       children,
	}
}

func (h *handler) newMindMapResp(v mindmap.MindMapView) mindMapResp {
	nodes := util.MapSlice(v.Nodes, toNodeResp)

	nodeTypes := make(map[string]int, len(v.Statistics.NodeTypes))
	for k, c := range v.Statistics.NodeTypes {
		nodeTypes[string(k)] = c
	}

	return mindMapResp{
		VideoID:         v.VideoID,
		ContentType:     string(v.ContentType),
		ConfidenceScore: v.ConfidenceScore,
		Nodes:           nodes,
		Statistics: statisticsResp{
			TotalNodes: v.Statistics.TotalNodes,
			RootNodes:  v.Statistics.RootNodes,
			MaxDepth:   v.Statistics.MaxDepth,
			NodeTypes:  nodeTypes,
		},
		UpdatedAt: response.DateTime(v.UpdatedAt),
	}
}

func (h *handler) newGenerateResp(o mindmap.GenerateOutput) generateResp {
	return generateResp{
		MindMap:          h.newMindMapResp(o.MindMap),
		AnalysisMetadata: o.AnalysisMetadata,
		ProcessingTime:   o.ProcessingTime,
		Analyzer:         o.AnalyzerName,
		Reused:           o.Reused,
	}
}

func (h *handler) newListResp(o mindmap.ListOutput) listResp {
	items := util.MapSlice(o.MindMaps, func(s model.MindMapSummary) summaryResp {
		return summaryResp{
			VideoID:         s.VideoID,
			NodesCount:      s.NodesCount,
			ConfidenceScore: util.Round(s.ConfidenceScore, 4),
			ContentType:     s.ContentType,
			UpdatedAt:       response.DateTime(s.UpdatedAt),
		}
	})
	return listResp{MindMaps: items, Paginator: o.Paginator.ToResponse()}
}

func (h *handler) newSearchResp(o mindmap.SearchOutput) searchResp {
	results := make([]searchResultResp, 0, len(o.Results))
	for _, r := range o.Results {
		results = append(results, searchResultResp{
			NodeID:         r.NodeID,
			VideoID:        r.VideoID,
			Content:        r.Content,
			NodeType:       string(r.NodeType),
			Depth:          r.Depth,
			Keywords:       r.Keywords,
			TimestampStart: r.TimestampStart,
			TimestampEnd:   r.TimestampEnd,
			Score:          r.Score,
		})
	}
	return searchResp{Query: o.Query, Results: results}
}

func (h *handler) newStatusResp(o mindmap.StatusOutput) statusResp {
	types := util.MapSlice(o.SupportedContentTypes, func(ct analysis.ContentType) string { return string(ct) })
	return statusResp{
		ServiceName:           o.ServiceName,
		UsingMock:             o.UsingMock,
		AnalyzerType:          o.AnalyzerType,
		Features:              o.Features,
		SupportedContentTypes: types,
		MaxDepth:              o.MaxDepth,
		Version:               o.Version,
	}
}

func (h *handler) newExportResp(o mindmap.ExportOutput) exportResp {
	return exportResp{
		VideoID:    o.VideoID,
		ObjectName: o.ObjectName,
		Format:     o.Format,
		Size:       o.Size,
		URL:        o.URL,
		ExpiresAt:  response.DateTime(o.ExpiresAt),
	}
}
