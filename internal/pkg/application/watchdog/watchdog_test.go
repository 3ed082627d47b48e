package watchdog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestSweepMarksSilentSensorsOffline(t *testing.T) {
	is, lw, r, a, m := testSetup(t, []types.SensorConfig{
		{ID: "TEMP001", Type: types.SensorTypeTemperature, Status: types.SensorStatusOnline, LastSeen: testTime().Add(-20 * time.Minute)},
		{ID: "HUM002", Type: types.SensorTypeHumidity, Status: types.SensorStatusOnline, LastSeen: testTime().Add(-1 * time.Minute)},
	})

	lw.sweep(context.Background())

	is.Equal(len(r.SetOfflineCalls()), 1)
	is.Equal(r.SetOfflineCalls()[0].SensorID, "TEMP001")

	is.Equal(len(a.AddCalls()), 1)
	alert := a.AddCalls()[0].Alert
	is.Equal(alert.Type, types.AlertSensorOffline)
	is.Equal(alert.Severity, types.AlertSeverityCritical)
	is.Equal(alert.SensorID, "TEMP001")

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	msg := m.PublishOnTopicCalls()[0].Message
	is.Equal(msg.TopicName(), "watchdog.sensorNotObserved")

	var notObserved alerts.SensorNotObserved
	is.NoErr(json.Unmarshal(msg.Body(), &notObserved))
	is.Equal(notObserved.SensorID, "TEMP001")
}

func TestSweepLeavesRecentlySeenSensorsAlone(t *testing.T) {
	is, lw, r, a, m := testSetup(t, []types.SensorConfig{
		{ID: "TEMP001", Type: types.SensorTypeTemperature, Status: types.SensorStatusOnline, LastSeen: testTime().Add(-30 * time.Second)},
	})

	lw.sweep(context.Background())

	is.Equal(len(r.SetOfflineCalls()), 0)
	is.Equal(len(a.AddCalls()), 0)
	is.Equal(len(m.PublishOnTopicCalls()), 0)
}

func TestCheckLastObservedIsAfter(t *testing.T) {
	is := is.New(t)

	observed, err := time.Parse(time.RFC3339, "2006-01-02T15:04:05Z")
	is.NoErr(err)
	now, err := time.Parse(time.RFC3339, "2006-01-02T15:04:10Z")
	is.NoErr(err)

	is.True(checkLastObservedIsAfter(observed, now, 10*time.Second))

	now = now.Add(30 * time.Second)
	is.True(!checkLastObservedIsAfter(observed, now, 10*time.Second))
}

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testSetup(t *testing.T, online []types.SensorConfig) (*is.I, *lastObservedWatcher, *registry.SensorRegistryMock, *alerts.AlertServiceMock, *messaging.MsgContextMock) {
	is := is.New(t)

	r := &registry.SensorRegistryMock{
		OnlineSensorsFunc: func(ctx context.Context) (types.Collection[types.SensorConfig], error) {
			return types.Collection[types.SensorConfig]{
				Data:       online,
				Count:      uint64(len(online)),
				TotalCount: uint64(len(online)),
			}, nil
		},
		SetOfflineFunc: func(ctx context.Context, sensorID string, at time.Time) error { return nil },
	}
	a := &alerts.AlertServiceMock{
		AddFunc: func(ctx context.Context, alert types.DataAlert) error { return nil },
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	lw := &lastObservedWatcher{
		registry:      r,
		alertSvc:      a,
		messenger:     m,
		silenceWindow: 10 * time.Minute,
		now:           testTime,
	}

	return is, lw, r, a, m
}
