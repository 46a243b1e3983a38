package analysis

// DefaultConfidenceScore is used when no node carries a confidence.
const DefaultConfidenceScore = 0.7

// AggregateConfidence is the mean of the non-nil node confidences.
func AggregateConfidence(nodes []Node) float64 {
	var sum float64
	var n int
	for _, node := range nodes {
		if node.Confidence == nil {
			continue
		}
		sum += *node.Confidence
		n++
	}
	if n == 0 {
		return DefaultConfidenceScore
	}
	return clamp01(sum / float64(n))
}
