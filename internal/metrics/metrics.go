package metrics

import (
	"sync/atomic"
)

type Collector struct {
	ordersSubmitted    int64
	ordersFulfilled    int64
	validationFailures int64
	emptyQueueHits     int64
	noFulfillableHits  int64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordSubmitted() {
	atomic.AddInt64(&c.ordersSubmitted, 1)
}

func (c *Collector) RecordFulfilled() {
	atomic.AddInt64(&c.ordersFulfilled, 1)
}

func (c *Collector) RecordValidationFailure() {
	atomic.AddInt64(&c.validationFailures, 1)
}

func (c *Collector) RecordEmptyQueue() {
	atomic.AddInt64(&c.emptyQueueHits, 1)
}

func (c *Collector) RecordNoFulfillable() {
	atomic.AddInt64(&c.noFulfillableHits, 1)
}

func (c *Collector) GetOrdersSubmitted() int64 {
	return atomic.LoadInt64(&c.ordersSubmitted)
}

func (c *Collector) GetOrdersFulfilled() int64 {
	return atomic.LoadInt64(&c.ordersFulfilled)
}

func (c *Collector) GetValidationFailures() int64 {
	return atomic.LoadInt64(&c.validationFailures)
}

func (c *Collector) GetEmptyQueueHits() int64 {
	return atomic.LoadInt64(&c.emptyQueueHits)
}

func (c *Collector) GetNoFulfillableHits() int64 {
	return atomic.LoadInt64(&c.noFulfillableHits)
}

// GetFulfillmentRate returns the percentage of accepted orders that have
// been fulfilled so far.
func (c *Collector) GetFulfillmentRate() float64 {
	submitted := c.GetOrdersSubmitted()
	if submitted == 0 {
		return 0
	}
	return float64(c.GetOrdersFulfilled()) / float64(submitted) * 100
}

type Stats struct {
	OrdersSubmitted    int64   `json:"orders_submitted"`
	OrdersFulfilled    int64   `json:"orders_fulfilled"`
	ValidationFailures int64   `json:"validation_failures"`
	EmptyQueueHits     int64   `json:"empty_queue_hits"`
	NoFulfillableHits  int64   `json:"no_fulfillable_hits"`
	FulfillmentRate    float64 `json:"fulfillment_rate_percent"`
}

func (c *Collector) GetStats() Stats {
	return Stats{
		OrdersSubmitted:    c.GetOrdersSubmitted(),
		OrdersFulfilled:    c.GetOrdersFulfilled(),
		ValidationFailures: c.GetValidationFailures(),
		EmptyQueueHits:     c.GetEmptyQueueHits(),
		NoFulfillableHits:  c.GetNoFulfillableHits(),
		FulfillmentRate:    c.GetFulfillmentRate(),
	}
}

func (c *Collector) Reset() {
	atomic.StoreInt64(&c.ordersSubmitted, 0)
	atomic.StoreInt64(&c.ordersFulfilled, 0)
	atomic.StoreInt64(&c.validationFailures, 0)
	atomic.StoreInt64(&c.emptyQueueHits, 0)
	atomic.StoreInt64(&c.noFulfillableHits, 0)
}
