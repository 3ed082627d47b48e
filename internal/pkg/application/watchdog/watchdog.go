package watchdog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	done chan bool

	registry  registry.SensorRegistry
	alertSvc  alerts.AlertService
	messenger messaging.MsgContext

	silenceWindow time.Duration
	interval      time.Duration
}

func New(r registry.SensorRegistry, a alerts.AlertService, m messaging.MsgContext, silenceWindow time.Duration) Watchdog {
	return &watchdogImpl{
		done:          make(chan bool),
		registry:      r,
		alertSvc:      a,
		messenger:     m,
		silenceWindow: silenceWindow,
		interval:      1 * time.Minute,
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	lw := &lastObservedWatcher{
		registry:      w.registry,
		alertSvc:      w.alertSvc,
		messenger:     w.messenger,
		silenceWindow: w.silenceWindow,
		now:           func() time.Time { return time.Now().UTC() },
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lw.sweep(ctx)
		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

type lastObservedWatcher struct {
	mu sync.Mutex

	registry  registry.SensorRegistry
	alertSvc  alerts.AlertService
	messenger messaging.MsgContext

	silenceWindow time.Duration
	now           func() time.Time
}

// sweep walks all online sensors and marks those silent for longer
// than the configured window as offline. Each transition raises an
// alert and publishes a notification for downstream consumers.
func (lw *lastObservedWatcher) sweep(ctx context.Context) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	log := logging.GetFromContext(ctx)

	online, err := lw.registry.OnlineSensors(ctx)
	if err != nil {
		log.Error("could not fetch online sensors", "err", err.Error())
		return
	}

	now := lw.now()

	for _, sensor := range online.Data {
		if checkLastObservedIsAfter(sensor.LastSeen, now, lw.silenceWindow) {
			continue
		}

		err := lw.registry.SetOffline(ctx, sensor.ID, now)
		if err != nil {
			log.Error("could not mark sensor offline", "sensor_id", sensor.ID, "err", err.Error())
			continue
		}

		log.Warn("sensor has gone silent", "sensor_id", sensor.ID, "last_seen", sensor.LastSeen.Format(time.RFC3339))

		err = lw.alertSvc.Add(ctx, types.DataAlert{
			SensorID:  sensor.ID,
			Type:      types.AlertSensorOffline,
			Severity:  types.AlertSeverityCritical,
			Message:   fmt.Sprintf("no data received from %s since %s", sensor.ID, sensor.LastSeen.Format(time.RFC3339)),
			Timestamp: now,
		})
		if err != nil {
			log.Error("could not create alert", "sensor_id", sensor.ID, "err", err.Error())
		}

		err = lw.messenger.PublishOnTopic(ctx, &alerts.SensorNotObserved{
			SensorID:   sensor.ID,
			ObservedAt: sensor.LastSeen,
		})
		if err != nil {
			log.Error("could not publish notification", "sensor_id", sensor.ID, "err", err.Error())
		}
	}
}

func checkLastObservedIsAfter(observed, now time.Time, window time.Duration) bool {
	return observed.After(now.Add(-window))
}
