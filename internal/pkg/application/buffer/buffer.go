package buffer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Config struct {
	BatchSize     int           `yaml:"batchSize"`
	FlushInterval time.Duration `yaml:"flushInterval"`

	// MaxQueueDepth caps the number of queued readings. When the cap is
	// reached the oldest reading is dropped to make room. Zero disables
	// the cap and restores unbounded growth.
	MaxQueueDepth int `yaml:"maxQueueDepth"`
}

func DefaultConfig() Config {
	return Config{
		BatchSize:     100,
		FlushInterval: 5 * time.Second,
		MaxQueueDepth: 10000,
	}
}

// FlushFunc receives a batch of readings in queue admission order. A
// returned error discards the batch from the buffer's point of view.
type FlushFunc func(ctx context.Context, batch []types.SensorReading) error

// Buffer decouples the arrival rate of validated readings from the
// processing rate. A batch is released when the queue reaches the
// configured batch size or when the periodic flush timer fires,
// whichever comes first.
type Buffer struct {
	cfg   Config
	flush FlushFunc

	mu       sync.Mutex
	queue    []types.SensorReading
	flushing bool

	done chan struct{}
	wg   sync.WaitGroup
}

func New(cfg Config, flush FlushFunc) (*Buffer, error) {
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("flush interval must be positive, got %s", cfg.FlushInterval)
	}
	if cfg.MaxQueueDepth < 0 {
		return nil, fmt.Errorf("max queue depth must not be negative, got %d", cfg.MaxQueueDepth)
	}
	if cfg.MaxQueueDepth > 0 && cfg.MaxQueueDepth < cfg.BatchSize {
		return nil, fmt.Errorf("max queue depth %d is smaller than batch size %d", cfg.MaxQueueDepth, cfg.BatchSize)
	}
	if flush == nil {
		return nil, fmt.Errorf("flush callback must not be nil")
	}

	return &Buffer{
		cfg:   cfg,
		flush: flush,
		done:  make(chan struct{}),
	}, nil
}

// Add appends a reading to the queue and triggers an immediate flush
// when the queue has reached the batch size.
func (b *Buffer) Add(ctx context.Context, r types.SensorReading) {
	b.mu.Lock()
	if b.cfg.MaxQueueDepth > 0 && len(b.queue) >= b.cfg.MaxQueueDepth {
		dropped := b.queue[0]
		b.queue = b.queue[1:]
		logging.GetFromContext(ctx).Warn("queue depth cap reached, dropping oldest reading",
			"sensor_id", dropped.SensorID, "max_queue_depth", b.cfg.MaxQueueDepth)
	}
	b.queue = append(b.queue, r)
	full := len(b.queue) >= b.cfg.BatchSize
	b.mu.Unlock()

	if full {
		b.Flush(ctx)
	}
}

// Flush atomically removes up to batchSize of the oldest readings and
// hands them to the flush callback. At most one flush is in flight at
// any time; concurrent triggers are no-ops and readings keep queueing
// while a flush executes.
func (b *Buffer) Flush(ctx context.Context) {
	b.mu.Lock()
	if b.flushing || len(b.queue) == 0 {
		b.mu.Unlock()
		return
	}
	b.flushing = true

	n := len(b.queue)
	if n > b.cfg.BatchSize {
		n = b.cfg.BatchSize
	}
	batch := make([]types.SensorReading, n)
	copy(batch, b.queue[:n])
	b.queue = b.queue[n:]
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.flushing = false
		b.mu.Unlock()
	}()

	err := b.flush(ctx, batch)
	if err != nil {
		// Accepted-loss boundary: the failing batch is not requeued and
		// its readings are gone from this component's point of view.
		logging.GetFromContext(ctx).Error("batch processing failed, discarding batch",
			"batch_size", len(batch), "err", err.Error())
	}
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Start launches the periodic flush timer. The timer flushes whenever
// the queue is non-empty and no flush is already in progress.
func (b *Buffer) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.cfg.FlushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				b.Flush(ctx)
			case <-b.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (b *Buffer) Stop(ctx context.Context) {
	close(b.done)
	b.wg.Wait()
}
