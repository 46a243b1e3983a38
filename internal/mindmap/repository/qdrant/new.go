package qdrant

import (
	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/pkg/log"
	pkgQdrant "mindmap-srv/pkg/qdrant"
)

const defaultVectorSize = 256

type implVectorRepository struct {
	client     pkgQdrant.IQdrant
	l          log.Logger
	collection string
	vectorizer Vectorizer
}

// New creates the Qdrant-backed node index. The collection must already exist with vectorSize dimensions.
func New(client pkgQdrant.IQdrant, l log.Logger, collection string, vectorSize int) repository.VectorRepository {
	if vectorSize <= 0 {
		vectorSize = defaultVectorSize
	}
	return &implVectorRepository{
		client:     client,
		l:          l,
		collection: collection,
		vectorizer: NewHashingVectorizer(vectorSize),
	}
}
