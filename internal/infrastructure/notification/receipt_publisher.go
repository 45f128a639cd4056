package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	apppayment "github.com/jetcongo/backend/internal/application/payment"
	"github.com/jetcongo/backend/internal/infrastructure/config"
)

// AMQPReceiptPublisher dispatches payment receipts to a durable RabbitMQ
// queue. Publishing happens after the payment transaction has committed, so
// every failure is logged and returned without affecting the payment itself.
type AMQPReceiptPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewAMQPReceiptPublisher connects to the broker and declares the receipt
// queue. Durable so receipts survive broker restarts.
func NewAMQPReceiptPublisher(cfg config.AMQPConfig, logger *zap.Logger) (*AMQPReceiptPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	if _, err := channel.QueueDeclare(
		cfg.ReceiptQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare receipt queue: %w", err)
	}

	return &AMQPReceiptPublisher{
		conn:    conn,
		channel: channel,
		queue:   cfg.ReceiptQueue,
		logger:  logger,
	}, nil
}

// PublishReceipt marshals the receipt and publishes it as a persistent
// message on the default exchange.
func (p *AMQPReceiptPublisher) PublishReceipt(ctx context.Context, receipt apppayment.Receipt) error {
	body, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("receipt publish failed",
			zap.String("reference", receipt.Reference),
			zap.String("queue", p.queue),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish receipt: %w", err)
	}

	p.logger.Debug("receipt published",
		zap.String("reference", receipt.Reference),
		zap.String("queue", p.queue),
	)
	return nil
}

// Close releases the channel and connection
func (p *AMQPReceiptPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

var _ apppayment.ReceiptNotifier = (*AMQPReceiptPublisher)(nil)

// NoOpReceiptPublisher is used when the broker integration is disabled.
type NoOpReceiptPublisher struct {
	logger *zap.Logger
}

// NewNoOpReceiptPublisher creates a notifier that only logs
func NewNoOpReceiptPublisher(logger *zap.Logger) *NoOpReceiptPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoOpReceiptPublisher{logger: logger}
}

// PublishReceipt records the receipt in the log and drops it
func (p *NoOpReceiptPublisher) PublishReceipt(_ context.Context, receipt apppayment.Receipt) error {
	p.logger.Info("receipt dispatch skipped, broker disabled",
		zap.String("reference", receipt.Reference),
	)
	return nil
}

var _ apppayment.ReceiptNotifier = (*NoOpReceiptPublisher)(nil)
