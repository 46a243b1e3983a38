package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/pkg/log"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchanges  []pkgRabbit.ExchangeArgs
	published  []pkgRabbit.PublishArgs
	declareErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(exc pkgRabbit.ExchangeArgs) error {
	f.exchanges = append(f.exchanges, exc)
	return f.declareErr
}

func (f *fakeChannel) QueueDeclare(pkgRabbit.QueueArgs) (amqp.Queue, error) { return amqp.Queue{}, nil }
func (f *fakeChannel) QueueBind(pkgRabbit.QueueBindArgs) error              { return nil }

func (f *fakeChannel) Publish(_ context.Context, p pkgRabbit.PublishArgs) error {
	f.published = append(f.published, p)
	return nil
}

func (f *fakeChannel) Consume(pkgRabbit.ConsumeArgs) (<-chan amqp.Delivery, error) { return nil, nil }

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeConn struct {
	ch *fakeChannel
}

func (f fakeConn) Close()                               {}
func (f fakeConn) IsReady() bool                        { return true }
func (f fakeConn) IsClosed() bool                       { return false }
func (f fakeConn) Channel() (pkgRabbit.IChannel, error) { return f.ch, nil }

func TestNotifyGenerated(t *testing.T) {
	ch := &fakeChannel{}
	n, err := New(log.NewNop(), fakeConn{ch: ch}, Config{})
	require.NoError(t, err)

	require.Len(t, ch.exchanges, 1)
	assert.Equal(t, DefaultExchange, ch.exchanges[0].Name)
	assert.Equal(t, pkgRabbit.ExchangeTypeTopic, ch.exchanges[0].Type)
	assert.True(t, ch.exchanges[0].Durable)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, n.NotifyGenerated(context.Background(), mindmap.GeneratedEvent{
		VideoID: "vid1", NodesCount: 4, ContentType: analysis.ContentTypeReview, GeneratedAt: at,
	}))

	require.Len(t, ch.published, 1)
	p := ch.published[0]
	assert.Equal(t, DefaultExchange, p.Exchange)
	assert.Equal(t, DefaultRoutingKey, p.RoutingKey)
	assert.Equal(t, uint8(amqp.Persistent), p.Msg.DeliveryMode)

	var body GeneratedNotification
	require.NoError(t, json.Unmarshal(p.Msg.Body, &body))
	assert.Equal(t, "vid1", body.VideoID)
	assert.Equal(t, "review", body.ContentType)
	assert.Equal(t, DefaultRoutingKey, body.Event)
}

func TestNewDeclareFailure(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	_, err := New(log.NewNop(), fakeConn{ch: ch}, Config{Exchange: "custom"})
	require.Error(t, err)
	assert.True(t, ch.closed)
}
