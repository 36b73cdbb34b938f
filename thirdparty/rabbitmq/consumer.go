package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/green-footprint/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	retryCountHeader = "x-retry-count"
	retryBaseDelay   = 5 * time.Second
	retryMaxDelay    = 5 * time.Minute
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	expirer *GoalExpirer

	// retry schedules a failed message again through the delayed exchange.
	retry func(ctx context.Context, body []byte, attempt int32, delay time.Duration) error
	// retryPause is how long to wait before requeueing when retry itself fails.
	retryPause time.Duration
}

func NewConsumer(url, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		conn:       conn,
		channel:    channel,
		expirer:    NewGoalExpirer(apiURL, apiKey, &http.Client{Timeout: 10 * time.Second}),
		retryPause: retryBaseDelay,
	}
	c.retry = c.republish
	return c, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		GoalDeadlineQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("goal deadline channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var goalMsg GoalDeadlineMessage
	if err := json.Unmarshal(msg.Body, &goalMsg); err != nil {
		logger.Error("failed to unmarshal goal deadline message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.expirer.Expire(ctx, goalMsg.GoalID); err != nil {
		attempt := retryCount(msg.Headers) + 1
		delay := retryDelay(attempt - 1)
		logger.Error("failed to expire goal",
			zap.Uint64("goal_id", goalMsg.GoalID),
			zap.Int32("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.String("error", err.Error()),
		)

		if err := c.retry(ctx, msg.Body, attempt, delay); err != nil {
			logger.Error("failed to schedule goal deadline retry", zap.Uint64("goal_id", goalMsg.GoalID), zap.String("error", err.Error()))
			pause(ctx, c.retryPause)
			_ = msg.Nack(false, true)
			return
		}
		_ = msg.Ack(false)
		return
	}

	_ = msg.Ack(false)
	logger.Info("goal deadline processed", zap.Uint64("goal_id", goalMsg.GoalID))
}

func (c *Consumer) republish(ctx context.Context, body []byte, attempt int32, delay time.Duration) error {
	return c.channel.PublishWithContext(ctx,
		GoalDeadlineExchange,   // exchange
		GoalDeadlineRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay":        delay.Milliseconds(),
				retryCountHeader: attempt,
			},
		},
	)
}

// retryDelay doubles from retryBaseDelay per previous attempt, capped at retryMaxDelay.
func retryDelay(previous int32) time.Duration {
	delay := retryBaseDelay
	for i := int32(0); i < previous && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > retryMaxDelay {
		return retryMaxDelay
	}
	return delay
}

func retryCount(headers amqp091.Table) int32 {
	switch v := headers[retryCountHeader].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	case int:
		return int32(v)
	}
	return 0
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// GoalExpirer calls the internal expire endpoint of the API.
type GoalExpirer struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewGoalExpirer(apiURL, apiKey string, client *http.Client) *GoalExpirer {
	return &GoalExpirer{apiURL: apiURL, apiKey: apiKey, client: client}
}

// Expire returns an error only when the call should be retried: transport
// failures and 5xx responses. A 4xx means the goal is gone or no longer
// eligible, so the message is done.
func (e *GoalExpirer) Expire(ctx context.Context, goalID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/goals/%d/expire", e.apiURL, goalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "goal-deadline-consumer")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
