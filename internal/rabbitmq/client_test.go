package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/photopager/internal/logger"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
)

type ackRecorder struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *ackRecorder) Ack(uint64, bool) error {
	a.acked++
	return nil
}

func (a *ackRecorder) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *ackRecorder) Reject(uint64, bool) error {
	return nil
}

func delivery(t *testing.T, ack *ackRecorder, body []byte) amqp.Delivery {
	t.Helper()
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
}

func TestHandleDelivery(t *testing.T) {
	payload := payloads.NewSyncPayload(time.Now())
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	t.Run("success acks", func(t *testing.T) {
		ack := &ackRecorder{}
		var got payloads.SyncPayload
		handleDelivery(context.Background(), delivery(t, ack, body), func(_ context.Context, p payloads.SyncPayload) error {
			got = p
			return nil
		}, logger.Discard())

		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.nacked)
		assert.Equal(t, payload.ID, got.ID)
	})

	t.Run("handler error requeues", func(t *testing.T) {
		ack := &ackRecorder{}
		handleDelivery(context.Background(), delivery(t, ack, body), func(context.Context, payloads.SyncPayload) error {
			return errors.New("upstream down")
		}, logger.Discard())

		assert.Equal(t, 0, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.True(t, ack.requeue)
	})

	t.Run("bad json dropped", func(t *testing.T) {
		ack := &ackRecorder{}
		called := false
		handleDelivery(context.Background(), delivery(t, ack, []byte("{not json")), func(context.Context, payloads.SyncPayload) error {
			called = true
			return nil
		}, logger.Discard())

		assert.False(t, called)
		assert.Equal(t, 1, ack.nacked)
		assert.False(t, ack.requeue)
	})
}
