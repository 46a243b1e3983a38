package qdrant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashingVectorizer(t *testing.T) {
	v := NewHashingVectorizer(64)

	t.Run("normalized and deterministic", func(t *testing.T) {
		a := v.Vectorize("Kafka brokers replicate partitions")
		b := v.Vectorize("Kafka brokers replicate partitions")
		assert.Len(t, a, 64)
		assert.Equal(t, a, b)

		var norm float64
		for _, x := range a {
			norm += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
	})

	t.Run("stop words only gives zero vector", func(t *testing.T) {
		vec := v.Vectorize("the and of to")
		for _, x := range vec {
			assert.Zero(t, x)
		}
	})

	t.Run("shared words score higher", func(t *testing.T) {
		q := v.Vectorize("kafka partitions")
		near := v.Vectorize("kafka partitions and consumer groups")
		far := v.Vectorize("chocolate cake recipe")
		assert.Greater(t, dot(q, near), dot(q, far))
	})
}

func dot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}
