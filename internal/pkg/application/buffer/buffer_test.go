package buffer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestFlushTriggersAtBatchSize(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var batches [][]types.SensorReading

	b, err := New(Config{BatchSize: 3, FlushInterval: time.Hour, MaxQueueDepth: 100},
		func(ctx context.Context, batch []types.SensorReading) error {
			batches = append(batches, batch)
			return nil
		})
	is.NoErr(err)

	for i := 0; i < 5; i++ {
		b.Add(ctx, reading(fmt.Sprintf("S%d", i)))
	}

	is.Equal(len(batches), 1)
	is.Equal(len(batches[0]), 3)
	is.Equal(b.Len(), 2)

	is.Equal(batches[0][0].SensorID, "S0")
	is.Equal(batches[0][2].SensorID, "S2")
}

func TestManualFlushDrainsRemainder(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var batches [][]types.SensorReading

	b, err := New(Config{BatchSize: 3, FlushInterval: time.Hour},
		func(ctx context.Context, batch []types.SensorReading) error {
			batches = append(batches, batch)
			return nil
		})
	is.NoErr(err)

	b.Add(ctx, reading("S0"))
	b.Add(ctx, reading("S1"))
	b.Flush(ctx)

	is.Equal(len(batches), 1)
	is.Equal(len(batches[0]), 2)
	is.Equal(b.Len(), 0)
}

func TestFlushOnEmptyQueueIsANoOp(t *testing.T) {
	is := is.New(t)

	calls := 0
	b, err := New(DefaultConfig(), func(ctx context.Context, batch []types.SensorReading) error {
		calls++
		return nil
	})
	is.NoErr(err)

	b.Flush(context.Background())
	is.Equal(calls, 0)
}

func TestFailedBatchIsDiscarded(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	b, err := New(Config{BatchSize: 2, FlushInterval: time.Hour},
		func(ctx context.Context, batch []types.SensorReading) error {
			return fmt.Errorf("downstream failure")
		})
	is.NoErr(err)

	b.Add(ctx, reading("S0"))
	b.Add(ctx, reading("S1"))

	is.Equal(b.Len(), 0)
}

func TestQueueDepthCapDropsOldest(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	returned := make(chan struct{})

	var batches [][]types.SensorReading

	b, err := New(Config{BatchSize: 5, FlushInterval: time.Hour, MaxQueueDepth: 10},
		func(ctx context.Context, batch []types.SensorReading) error {
			batches = append(batches, batch)
			if len(batches) == 1 {
				close(started)
				<-release
			}
			return nil
		})
	is.NoErr(err)

	for i := 0; i < 4; i++ {
		b.Add(ctx, reading(fmt.Sprintf("S%d", i)))
	}

	// the fifth add reaches batch size and blocks inside the flush
	// callback, so readings keep queueing while the flush is in flight
	go func() {
		b.Add(ctx, reading("S4"))
		close(returned)
	}()
	<-started

	// the eleventh queued reading exceeds the cap, dropping S5
	for i := 5; i < 16; i++ {
		b.Add(ctx, reading(fmt.Sprintf("S%d", i)))
	}
	is.Equal(b.Len(), 10)

	close(release)
	<-returned

	b.Flush(ctx)

	is.Equal(len(batches), 2)
	is.Equal(batches[1][0].SensorID, "S6")
	is.Equal(b.Len(), 5)
}

func TestConfigurationIsValidatedAtConstruction(t *testing.T) {
	is := is.New(t)

	noop := func(ctx context.Context, batch []types.SensorReading) error { return nil }

	_, err := New(Config{BatchSize: 0, FlushInterval: time.Second}, noop)
	is.True(err != nil)

	_, err = New(Config{BatchSize: 10, FlushInterval: 0}, noop)
	is.True(err != nil)

	_, err = New(Config{BatchSize: 10, FlushInterval: time.Second, MaxQueueDepth: 5}, noop)
	is.True(err != nil)

	_, err = New(Config{BatchSize: 10, FlushInterval: time.Second}, nil)
	is.True(err != nil)
}

func TestPeriodicFlush(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	flushed := make(chan []types.SensorReading, 1)

	b, err := New(Config{BatchSize: 100, FlushInterval: 10 * time.Millisecond},
		func(ctx context.Context, batch []types.SensorReading) error {
			select {
			case flushed <- batch:
			default:
			}
			return nil
		})
	is.NoErr(err)

	b.Add(ctx, reading("S0"))
	b.Start(ctx)
	defer b.Stop(ctx)

	select {
	case batch := <-flushed:
		is.Equal(len(batch), 1)
	case <-time.After(time.Second):
		t.Fatal("timer flush never fired")
	}
}

func reading(sensorID string) types.SensorReading {
	return types.SensorReading{
		SensorID:   sensorID,
		SensorType: types.SensorTypeTemperature,
		Value:      types.NewValue(20),
		Timestamp:  time.Now().UTC(),
	}
}
