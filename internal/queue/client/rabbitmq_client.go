package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

func NewRabbitMqClient(queueURL, queueName string) (*RabbitMqClient, error) {
	connection, err := amqp.Dial(queueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue broker: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Durable queue so in-flight requests survive a broker restart.
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: connection,
		channel:    channel,
		queueName:  queueName,
	}, nil
}

func (c *RabbitMqClient) SendMessage(messageBody string) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return c.channel.PublishWithContext(
		ctx,
		"",          // default exchange
		c.queueName, // routing key == queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         []byte(messageBody),
		},
	)
}

// ReceiveMessages returns a channel of queue messages. Messages are not
// auto-acked; callers acknowledge via DeleteMessage once processed.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	deliveries, err := c.channel.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume from queue %s: %w", c.queueName, err)
	}

	messages := make(chan QueueMessage)
	go func() {
		defer close(messages)
		for delivery := range deliveries {
			messages <- QueueMessage{
				Body:    string(delivery.Body),
				Receipt: strconv.FormatUint(delivery.DeliveryTag, 10),
			}
		}
	}()
	return messages, nil
}

func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	deliveryTag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid message receipt %q: %w", receipt, err)
	}
	return c.channel.Ack(deliveryTag, false)
}

func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return errors.New("queue connection is closed")
	}
	if c.channel.IsClosed() {
		return errors.New("queue channel is closed")
	}
	return nil
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}

func (c *RabbitMqClient) Stop() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}
