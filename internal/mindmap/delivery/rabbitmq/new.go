package rabbitmq

import (
	"fmt"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/pkg/log"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"
)

// Config holds the exchange the notifier publishes to.
type Config struct {
	Exchange   string
	RoutingKey string
}

type implNotifier struct {
	l          log.Logger
	ch         pkgRabbit.IChannel
	exchange   string
	routingKey string
}

// New opens a channel and declares a durable topic exchange.
func New(l log.Logger, conn pkgRabbit.IRabbitMQ, cfg Config) (mindmap.Notifier, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.RoutingKey == "" {
		cfg.RoutingKey = DefaultRoutingKey
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    cfg.Exchange,
		Type:    pkgRabbit.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &implNotifier{
		l:          l,
		ch:         ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}
