package analysis

import "strings"

// NodeType is the level of a node in the mind map.
type NodeType string

const (
	NodeTypeRoot     NodeType = "root"
	NodeTypeTopic    NodeType = "topic"
	NodeTypeSubtopic NodeType = "subtopic"
	NodeTypeDetail   NodeType = "detail"
)

// ContentType classifies the analysed video. It only changes behaviour in the mock analyzer.
type ContentType string

const (
	ContentTypeEducational   ContentType = "educational"
	ContentTypeEntertainment ContentType = "entertainment"
	ContentTypeNews          ContentType = "news"
	ContentTypeTutorial      ContentType = "tutorial"
	ContentTypeDiscussion    ContentType = "discussion"
	ContentTypeReview        ContentType = "review"
)

// ContentTypes lists every supported content type.
var ContentTypes = []ContentType{
	ContentTypeEducational,
	ContentTypeEntertainment,
	ContentTypeNews,
	ContentTypeTutorial,
	ContentTypeDiscussion,
	ContentTypeReview,
}

// ParseContentType is case-insensitive. ok is false for unknown values.
func ParseContentType(s string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ContentTypes {
		if ct == known {
			return ct, true
		}
	}
	return "", false
}

// TranscriptSegment is one timestamped span of the input transcript. Times are in seconds.
type TranscriptSegment struct {
	StartTime  float64  `json:"start_time" yaml:"start_time"`
	EndTime    float64  `json:"end_time" yaml:"end_time"`
	Text       string   `json:"text" yaml:"text"`
	Confidence *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

func (s TranscriptSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// Transcript is the materialized input of one analysis run.
type Transcript struct {
	VideoID  string              `json:"video_id" yaml:"video_id"`
	Segments []TranscriptSegment `json:"segments" yaml:"segments"`
	Language string              `json:"language,omitempty" yaml:"language,omitempty"`
	Duration float64             `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// MaxEndTime returns the latest segment end, or 0 without segments.
func (t Transcript) MaxEndTime() float64 {
	var end float64
	for _, s := range t.Segments {
		if s.EndTime > end {
			end = s.EndTime
		}
	}
	return end
}

// ContentSegment is an analysed transcript segment.
type ContentSegment struct {
	ID             string
	Content        string
	TimestampStart float64
	TimestampEnd   float64
	Topics         []string
	Keywords       []string
	Summary        string
	Importance     float64
	Confidence     float64
	WordCount      int
}

func (s ContentSegment) Duration() float64 {
	return s.TimestampEnd - s.TimestampStart
}

// TopicHierarchy groups the segments sharing one main topic.
type TopicHierarchy struct {
	Topic      string
	Confidence float64
	Importance float64
	Keywords   []string
	Segments   []string
	Subtopics  []TopicHierarchy
}

// Node is one element of the generated mind map.
type Node struct {
	ID             string   `json:"id" yaml:"id"`
	VideoID        string   `json:"video_id" yaml:"video_id"`
	ParentNodeID   *string  `json:"parent_node_id" yaml:"parent_node_id"`
	Content        string   `json:"content" yaml:"content"`
	Summary        string   `json:"summary" yaml:"summary"`
	TimestampStart float64  `json:"timestamp_start" yaml:"timestamp_start"`
	TimestampEnd   float64  `json:"timestamp_end" yaml:"timestamp_end"`
	NodeType       NodeType `json:"node_type" yaml:"node_type"`
	Depth          int      `json:"depth" yaml:"depth"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	PositionX      float64  `json:"position_x" yaml:"position_x"`
	PositionY      float64  `json:"position_y" yaml:"position_y"`
	Confidence     *float64 `json:"confidence" yaml:"confidence"`
	Importance     *float64 `json:"importance" yaml:"importance"`
	WordCount      *int     `json:"word_count" yaml:"word_count"`
	Children       []string `json:"children" yaml:"children"`
}

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool {
	return n.ParentNodeID == nil
}

// MindMap is the complete result of one analysis run.
type MindMap struct {
	VideoID          string         `json:"video_id" yaml:"video_id"`
	Nodes            []Node         `json:"nodes" yaml:"nodes"`
	ContentType      ContentType    `json:"content_type" yaml:"content_type"`
	AnalysisMetadata map[string]any `json:"analysis_metadata" yaml:"analysis_metadata"`
	TotalDuration    float64        `json:"total_duration" yaml:"total_duration"`
	ProcessingTime   float64        `json:"processing_time" yaml:"processing_time"`
	ConfidenceScore  float64        `json:"confidence_score" yaml:"confidence_score"`
}

// Statistics summarises a node list.
type Statistics struct {
	TotalNodes int              `json:"total_nodes" yaml:"total_nodes"`
	RootNodes  int              `json:"root_nodes" yaml:"root_nodes"`
	MaxDepth   int              `json:"max_depth" yaml:"max_depth"`
	NodeTypes  map[NodeType]int `json:"node_types" yaml:"node_types"`
}
