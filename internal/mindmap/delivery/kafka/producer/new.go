package producer

import (
	"mindmap-srv/internal/mindmap"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
)

// Producer publishes mindmap domain events to Kafka
type Producer interface {
	mindmap.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new mindmap producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
