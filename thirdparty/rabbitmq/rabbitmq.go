package rabbitmq

import (
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	GoalDeadlineExchange   = "goal_deadline_exchange"
	GoalDeadlineQueue      = "goal_deadline_queue"
	GoalDeadlineRoutingKey = "goal_deadline"
)

type GoalDeadlineMessage struct {
	GoalID   uint64    `json:"goal_id"`
	UserID   uint64    `json:"user_id"`
	Deadline time.Time `json:"deadline"`
}

// declareTopology declares the delayed exchange, the queue and their binding.
// It is idempotent and shared by the publisher and the consumer.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		GoalDeadlineExchange, // name
		"x-delayed-message",  // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		GoalDeadlineQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		GoalDeadlineQueue,      // queue name
		GoalDeadlineRoutingKey, // routing key
		GoalDeadlineExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

// dial opens a connection and a channel with the topology declared.
func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// delayMillis is the x-delay header value for a message due at deadline.
func delayMillis(deadline, now time.Time) int64 {
	delay := deadline.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}
