package analysis

import "math"

// EstimateProcessingTime returns the expected analysis time in seconds.
func EstimateProcessingTime(segmentCount int, durationSeconds float64, mock bool) float64 {
	minutes := durationSeconds / 60.0
	if mock {
		return math.Min(float64(segmentCount)*0.1+minutes*0.2, 5.0)
	}
	return math.Min(float64(segmentCount)*0.5+minutes*1.0, 60.0)
}
