package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_CountsEachKind(t *testing.T) {
	c := New()

	c.RecordSubmitted()
	c.RecordSubmitted()
	c.RecordFulfilled()
	c.RecordValidationFailure()
	c.RecordEmptyQueue()
	c.RecordNoFulfillable()

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.OrdersSubmitted)
	assert.Equal(t, int64(1), stats.OrdersFulfilled)
	assert.Equal(t, int64(1), stats.ValidationFailures)
	assert.Equal(t, int64(1), stats.EmptyQueueHits)
	assert.Equal(t, int64(1), stats.NoFulfillableHits)
	assert.Equal(t, 50.0, stats.FulfillmentRate)
}

func TestCollector_FulfillmentRateZeroWhenIdle(t *testing.T) {
	assert.Equal(t, 0.0, New().GetFulfillmentRate())
}

func TestCollector_Reset(t *testing.T) {
	c := New()
	c.RecordSubmitted()
	c.RecordFulfilled()

	c.Reset()

	assert.Equal(t, Stats{}, c.GetStats())
}
