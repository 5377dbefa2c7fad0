package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"warehouse-fulfillment/internal/inventory"
	"warehouse-fulfillment/internal/metrics"
	"warehouse-fulfillment/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyQueue signals that no orders are pending at all.
	ErrEmptyQueue = errors.New("no pending orders")

	// ErrNoFulfillableOrder signals that orders are pending but none can
	// be satisfied with current stock.
	ErrNoFulfillableOrder = errors.New("no pending order is fulfillable with current stock")
)

// ValidationError rejects a submission and names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Engine accepts orders and selects the next one to fulfill. Every
// public method runs under the same mutex, so each call is a single
// atomic step against the pending set and the ledger together.
type Engine struct {
	mu      sync.Mutex
	ledger  *inventory.Ledger
	pending pendingSet
	lastSeq uint64
	metrics *metrics.Collector
	logger  *zap.Logger
}

func New(ledger *inventory.Ledger, m *metrics.Collector, logger *zap.Logger) *Engine {
	return &Engine{
		ledger:  ledger,
		metrics: m,
		logger:  logger,
	}
}

// Submit validates the request and appends it to the pending set.
// Submission never touches inventory; stock matters only at fulfillment
// time, so an order for out-of-stock items is accepted and waits. The
// returned order carries the assigned ID and submission sequence.
func (e *Engine) Submit(item string, quantity int, category string, timestamp time.Time) (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := validate(item, quantity, category, timestamp); err != nil {
		e.metrics.RecordValidationFailure()
		return models.Order{}, err
	}

	e.lastSeq++
	order := models.Order{
		ID:        uuid.New().String(),
		Item:      item,
		Quantity:  quantity,
		Category:  models.Category(category),
		Timestamp: timestamp,
		Sequence:  e.lastSeq,
	}
	e.pending.add(order)
	e.metrics.RecordSubmitted()

	e.logger.Info("order accepted",
		zap.String("order_id", order.ID),
		zap.String("item", order.Item),
		zap.Int("quantity", order.Quantity),
		zap.String("category", string(order.Category)),
		zap.Uint64("sequence", order.Sequence),
	)

	return order, nil
}

func validate(item string, quantity int, category string, timestamp time.Time) error {
	if item == "" {
		return &ValidationError{Field: "item", Reason: "must be a non-empty string"}
	}
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if !models.Category(category).Valid() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unrecognized category %q", category)}
	}
	if timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Reason: "must be a valid timestamp"}
	}
	return nil
}

// NextOrder selects the highest-priority pending order that current
// stock can satisfy, decrements the ledger and removes the order from
// the pending set, all under one lock. Priority is perishables first,
// then earliest timestamp, then earliest submission. ErrEmptyQueue and
// ErrNoFulfillableOrder distinguish an idle queue from a blocked one.
func (e *Engine) NextOrder() (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending.size() == 0 {
		e.metrics.RecordEmptyQueue()
		return models.Order{}, ErrEmptyQueue
	}

	best := e.pending.bestFulfillable(e.ledger.Has)
	if best < 0 {
		e.metrics.RecordNoFulfillable()
		e.logger.Info("no fulfillable order", zap.Int("pending", e.pending.size()))
		return models.Order{}, ErrNoFulfillableOrder
	}

	order := e.pending.orders[best]
	if err := e.ledger.Decrement(order.Item, order.Quantity); err != nil {
		// Unreachable while this engine is the ledger's only writer:
		// availability was checked under the lock still held here.
		return models.Order{}, fmt.Errorf("decrement %q after availability check: %w", order.Item, err)
	}
	e.pending.removeAt(best)
	e.metrics.RecordFulfilled()

	e.logger.Info("order fulfilled",
		zap.String("order_id", order.ID),
		zap.String("item", order.Item),
		zap.Int("quantity", order.Quantity),
		zap.String("category", string(order.Category)),
		zap.Int("stock_remaining", e.ledger.Get(order.Item)),
		zap.Int("pending", e.pending.size()),
	)

	return order, nil
}

// InventoryView returns a consistent copy of current stock levels.
func (e *Engine) InventoryView() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Snapshot()
}

// PendingCount reports how many accepted orders await fulfillment.
func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending.size()
}
