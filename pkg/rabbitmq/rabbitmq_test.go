package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsSpread(t *testing.T) {
	name, kind, durable, autoDelete, internal, noWait, _ := ExchangeArgs{
		Name: "mindmap.events", Type: ExchangeTypeTopic, Durable: true,
	}.spread()
	assert.Equal(t, "mindmap.events", name)
	assert.Equal(t, ExchangeTypeTopic, kind)
	assert.True(t, durable)
	assert.False(t, autoDelete || internal || noWait)

	queue, key, exchange, _, _ := QueueBindArgs{Queue: "q", Exchange: "x", RoutingKey: "k"}.spread()
	assert.Equal(t, []string{"q", "k", "x"}, []string{queue, key, exchange})

	ctx := context.Background()
	c, ex, rk, _, _, msg := PublishArgs{
		Exchange:   "mindmap.events",
		RoutingKey: "mindmap.generated",
		Msg:        Publishing{ContentType: ContentTypeJSON, Body: []byte("{}")},
	}.spread(ctx)
	assert.Equal(t, ctx, c)
	assert.Equal(t, "mindmap.events", ex)
	assert.Equal(t, "mindmap.generated", rk)
	assert.Equal(t, ContentTypeJSON, msg.ContentType)
}

func TestConnection_NotConnected(t *testing.T) {
	c := &connectionImpl{}
	assert.False(t, c.IsReady())
	assert.True(t, c.IsClosed())

	_, err := c.Channel()
	assert.ErrorIs(t, err, ErrNotConnected)
}
