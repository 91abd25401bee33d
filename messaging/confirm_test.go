package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deliveryConfirmation resolves once the broker answers for one delivery tag
type deliveryConfirmation struct {
	answer chan bool
}

func newDeliveryConfirmation() *deliveryConfirmation {
	return &deliveryConfirmation{answer: make(chan bool, 1)}
}

func (d *deliveryConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-d.answer:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func TestAwaitConfirmation(t *testing.T) {
	t.Run("ack", func(t *testing.T) {
		dc := newDeliveryConfirmation()
		dc.answer <- true
		assert.NoError(t, awaitConfirmation(context.Background(), dc))
	})

	t.Run("nack", func(t *testing.T) {
		dc := newDeliveryConfirmation()
		dc.answer <- false
		assert.EqualError(t, awaitConfirmation(context.Background(), dc), "publish NACK from broker")
	})

	t.Run("late ack does not leak into the next publish", func(t *testing.T) {
		first := newDeliveryConfirmation()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, awaitConfirmation(ctx, first), context.DeadlineExceeded)

		// the first delivery is acked after its publisher gave up
		first.answer <- true

		second := newDeliveryConfirmation()
		second.answer <- false
		assert.EqualError(t, awaitConfirmation(context.Background(), second), "publish NACK from broker")
	})
}
