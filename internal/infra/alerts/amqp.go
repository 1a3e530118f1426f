// Package alerts publishes reversal notices to the operational queue. A
// reversal notice means an authorized charge has no matching booking; the
// consumer side (ops tooling) owns the actual refund.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

type AMQPReversalAlerts struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewAMQPReversalAlerts(cfg config.AlertsConfig) (*AMQPReversalAlerts, func(), error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		cfg.QueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	a := &AMQPReversalAlerts{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}

	cleanup := func() {
		a.channel.Close()
		a.conn.Close()
	}

	return a, cleanup, nil
}

func (a *AMQPReversalAlerts) PublishReversal(ctx context.Context, alert commands.ReversalAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal reversal alert: %w", err)
	}

	err = a.channel.PublishWithContext(
		ctx,
		"",           // exchange
		a.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish reversal alert: %w", err)
	}
	return nil
}
