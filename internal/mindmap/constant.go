package mindmap

const (
	ServiceName    = "Content Analysis Manager"
	ServiceVersion = "1.0.0"

	MinMaxTopics     = 1
	MaxMaxTopics     = 50
	DefaultMaxTopics = 10

	MinSummaryLength     = 10
	MaxSummaryLength     = 500
	DefaultSummaryLength = 100

	DefaultSearchLimit = 10
	MaxSearchLimit     = 50

	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"

	// SystemUserID marks runs triggered by Kafka or internal callers.
	SystemUserID = "system"
)

// Features lists the capabilities reported by Status.
var Features = map[string]bool{
	"topic_extraction":       true,
	"content_summarization":  true,
	"keyword_extraction":     true,
	"hierarchical_structure": true,
	"timestamp_mapping":      true,
	"position_calculation":   true,
}
