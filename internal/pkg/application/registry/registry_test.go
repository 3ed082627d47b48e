package registry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestRegisterAddsUnknownSensor(t *testing.T) {
	is, s := testSetup(t, nil)
	r := New(s)

	err := r.Register(context.Background(), types.SensorConfig{ID: "TEMP001", Type: types.SensorTypeTemperature})
	is.NoErr(err)

	is.Equal(len(s.AddSensorCalls()), 1)
	is.Equal(s.AddSensorCalls()[0].Cfg.Status, types.SensorStatusOffline)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	is, s := testSetup(t, &types.SensorConfig{ID: "TEMP001", Type: types.SensorTypeTemperature})
	r := New(s)

	err := r.Register(context.Background(), types.SensorConfig{ID: "TEMP001", Type: types.SensorTypeTemperature})
	is.True(err == ErrSensorAlreadyExists)
	is.Equal(len(s.AddSensorCalls()), 0)
}

func TestRegisterRejectsUnknownType(t *testing.T) {
	is, s := testSetup(t, nil)
	r := New(s)

	err := r.Register(context.Background(), types.SensorConfig{ID: "X1", Type: types.SensorType("wind")})
	is.True(err != nil)
}

func TestGetMapsMissingSensorToNotFound(t *testing.T) {
	is, s := testSetup(t, nil)
	r := New(s)

	_, err := r.Get(context.Background(), "NOPE")
	is.True(err == ErrSensorNotFound)
}

func TestObserveRegistersUnknownSensorAsOnline(t *testing.T) {
	is, s := testSetup(t, nil)
	r := New(s)

	at := time.Now().UTC()
	err := r.Observe(context.Background(), "HUM002", types.SensorTypeHumidity, at)
	is.NoErr(err)

	is.Equal(len(s.AddSensorCalls()), 1)
	added := s.AddSensorCalls()[0].Cfg
	is.Equal(added.ID, "HUM002")
	is.Equal(added.Status, types.SensorStatusOnline)
	is.Equal(added.LastSeen, at)
}

func TestObserveMovesLastSeenForKnownSensor(t *testing.T) {
	is, s := testSetup(t, &types.SensorConfig{ID: "HUM002", Type: types.SensorTypeHumidity, Status: types.SensorStatusOffline})
	r := New(s)

	at := time.Now().UTC()
	err := r.Observe(context.Background(), "HUM002", types.SensorTypeHumidity, at)
	is.NoErr(err)

	is.Equal(len(s.SetSensorStatusCalls()), 1)
	call := s.SetSensorStatusCalls()[0]
	is.Equal(call.Status, types.SensorStatusOnline)
	is.Equal(call.LastSeen, at)
}

func TestSetOfflinePreservesLastSeen(t *testing.T) {
	lastSeen := time.Now().UTC().Add(-10 * time.Minute)
	is, s := testSetup(t, &types.SensorConfig{ID: "TEMP001", Type: types.SensorTypeTemperature, Status: types.SensorStatusOnline, LastSeen: lastSeen})
	r := New(s)

	err := r.SetOffline(context.Background(), "TEMP001", time.Now().UTC())
	is.NoErr(err)

	is.Equal(len(s.SetSensorStatusCalls()), 1)
	call := s.SetSensorStatusCalls()[0]
	is.Equal(call.Status, types.SensorStatusOffline)
	is.Equal(call.LastSeen, lastSeen)
}

func TestOnlineSensorsFiltersByStatus(t *testing.T) {
	is, s := testSetup(t, nil)
	r := New(s)

	_, err := r.OnlineSensors(context.Background())
	is.NoErr(err)

	is.Equal(len(s.QuerySensorsCalls()), 1)
	c := &storage.Condition{}
	for _, f := range s.QuerySensorsCalls()[0].Conditions {
		f(c)
	}
	is.Equal(c.Status, "online")
}

func TestSeedAddsAndUpdatesSensors(t *testing.T) {
	is, s := testSetup(t, &types.SensorConfig{ID: "TEMP001", Type: types.SensorTypeTemperature})

	err := Seed(context.Background(), s, strings.NewReader(seedYaml))
	is.NoErr(err)

	is.Equal(len(s.UpdateSensorCalls()), 1)
	is.Equal(s.UpdateSensorCalls()[0].Cfg.ID, "TEMP001")

	is.Equal(len(s.AddSensorCalls()), 1)
	added := s.AddSensorCalls()[0].Cfg
	is.Equal(added.ID, "PRES003")
	is.Equal(*added.Thresholds["pressure"].Max, 1100.0)
}

func TestSeedRejectsInvalidEntries(t *testing.T) {
	is, s := testSetup(t, nil)

	err := Seed(context.Background(), s, strings.NewReader("sensors:\n  - id: \"\"\n    type: temperature\n"))
	is.True(err != nil)
}

const seedYaml = `
sensors:
  - id: TEMP001
    type: temperature
    thresholds:
      temperature:
        min: -20
        max: 60
  - id: PRES003
    type: pressure
    thresholds:
      pressure:
        min: 900
        max: 1100
`

func testSetup(t *testing.T, existing *types.SensorConfig) (*is.I, *SensorStorageMock) {
	is := is.New(t)

	s := &SensorStorageMock{
		AddSensorFunc:    func(ctx context.Context, cfg types.SensorConfig) error { return nil },
		UpdateSensorFunc: func(ctx context.Context, cfg types.SensorConfig) error { return nil },
		GetSensorFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.SensorConfig, error) {
			c := &storage.Condition{}
			for _, f := range conditions {
				f(c)
			}
			if existing != nil && c.SensorID == existing.ID {
				return *existing, nil
			}
			return types.SensorConfig{}, storage.ErrNoRows
		},
		QuerySensorsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorConfig], error) {
			return types.Collection[types.SensorConfig]{}, nil
		},
		SetSensorStatusFunc: func(ctx context.Context, sensorID string, status types.SensorStatus, lastSeen time.Time) error {
			return nil
		},
	}

	return is, s
}
