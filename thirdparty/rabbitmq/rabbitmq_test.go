package rabbitmq

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayMillis(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(1500), delayMillis(now.Add(1500*time.Millisecond), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Hour), now))
}

func TestGoalExpirer_Expire(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "success", status: http.StatusOK},
		{name: "goal no longer eligible is not retried", status: http.StatusNotFound},
		{name: "server error is retried", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			e := NewGoalExpirer(srv.URL, "secret-key", srv.Client())
			err := e.Expire(context.Background(), 42)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "/internal/v1/goals/42/expire", gotPath)
			assert.Equal(t, "Bearer secret-key", gotAuth)
		})
	}
}

// recordingAcker captures how a delivery was settled.
type recordingAcker struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *recordingAcker) Ack(uint64, bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcker) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeue = true, requeue
	return nil
}

func (a *recordingAcker) Reject(_ uint64, requeue bool) error {
	a.nacked, a.requeue = true, requeue
	return nil
}

type retryCall struct {
	attempt int32
	delay   time.Duration
}

func TestConsumer_Handle(t *testing.T) {
	body := []byte(`{"goal_id":42,"user_id":7,"deadline":"2024-01-01T00:00:00Z"}`)

	tests := []struct {
		name        string
		status      int
		body        []byte
		headers     amqp091.Table
		retryErr    error
		wantRetry   *retryCall
		wantAck     bool
		wantRequeue bool
	}{
		{name: "processed", status: http.StatusOK, body: body, wantAck: true},
		{name: "not eligible is dropped", status: http.StatusNotFound, body: body, wantAck: true},
		{name: "malformed body is dropped", status: http.StatusOK, body: []byte("{"), wantAck: true},
		{
			name:      "server error is scheduled again",
			status:    http.StatusServiceUnavailable,
			body:      body,
			wantRetry: &retryCall{attempt: 1, delay: 5 * time.Second},
			wantAck:   true,
		},
		{
			name:      "retry delay grows with attempts",
			status:    http.StatusServiceUnavailable,
			body:      body,
			headers:   amqp091.Table{retryCountHeader: int32(3)},
			wantRetry: &retryCall{attempt: 4, delay: 40 * time.Second},
			wantAck:   true,
		},
		{
			name:        "broker failure requeues",
			status:      http.StatusInternalServerError,
			body:        body,
			retryErr:    errors.New("channel closed"),
			wantRetry:   &retryCall{attempt: 1, delay: 5 * time.Second},
			wantRequeue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			var got *retryCall
			c := &Consumer{
				expirer: NewGoalExpirer(srv.URL, "secret-key", srv.Client()),
				retry: func(_ context.Context, b []byte, attempt int32, delay time.Duration) error {
					assert.Equal(t, tt.body, b)
					got = &retryCall{attempt: attempt, delay: delay}
					return tt.retryErr
				},
			}

			acker := &recordingAcker{}
			c.handle(context.Background(), amqp091.Delivery{
				Acknowledger: acker,
				DeliveryTag:  1,
				Headers:      tt.headers,
				Body:         tt.body,
			})

			assert.Equal(t, tt.wantRetry, got)
			assert.Equal(t, tt.wantAck, acker.acked)
			assert.Equal(t, tt.wantRequeue, acker.nacked && acker.requeue)
		})
	}
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, retryDelay(0))
	assert.Equal(t, 10*time.Second, retryDelay(1))
	assert.Equal(t, retryMaxDelay, retryDelay(10))
	assert.Equal(t, retryMaxDelay, retryDelay(1000))
}
