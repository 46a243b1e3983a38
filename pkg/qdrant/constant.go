package qdrant

import "time"

const (
	DefaultTimeout     = 30 * time.Second
	DefaultPingTimeout = 5 * time.Second
	// DefaultSearchLimit applies when limit is 0.
	DefaultSearchLimit = 10

	DistanceCosine    = "cosine"
	DistanceEuclidean = "euclidean"
	DistanceDot       = "dot"
	DistanceManhattan = "manhattan"
)
