package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestGetSensorReturnsSensorConfig(t *testing.T) {
	is := is.New(t)

	sensors := &registry.SensorRegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.SensorConfig, error) {
			return types.SensorConfig{ID: sensorID, Type: types.SensorTypeTemperature, Status: types.SensorStatusOnline}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/sensors/TEMP001", nil)
	res := serve(t, req, sensors, nil, nil)

	is.Equal(res.Code, http.StatusOK)

	var cfg types.SensorConfig
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &cfg))
	is.Equal(cfg.ID, "TEMP001")
}

func TestGetUnknownSensorReturns404(t *testing.T) {
	is := is.New(t)

	sensors := &registry.SensorRegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.SensorConfig, error) {
			return types.SensorConfig{}, registry.ErrSensorNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/sensors/NOPE", nil)
	res := serve(t, req, sensors, nil, nil)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestRegisterSensor(t *testing.T) {
	is := is.New(t)

	sensors := &registry.SensorRegistryMock{
		RegisterFunc: func(ctx context.Context, cfg types.SensorConfig) error { return nil },
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/sensors", strings.NewReader(`{"id":"TEMP001","type":"temperature"}`))
	res := serve(t, req, sensors, nil, nil)

	is.Equal(res.Code, http.StatusCreated)
	is.Equal(len(sensors.RegisterCalls()), 1)
	is.Equal(sensors.RegisterCalls()[0].Cfg.ID, "TEMP001")
}

func TestRegisterDuplicateSensorReturns409(t *testing.T) {
	is := is.New(t)

	sensors := &registry.SensorRegistryMock{
		RegisterFunc: func(ctx context.Context, cfg types.SensorConfig) error {
			return registry.ErrSensorAlreadyExists
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/sensors", strings.NewReader(`{"id":"TEMP001","type":"temperature"}`))
	res := serve(t, req, sensors, nil, nil)

	is.Equal(res.Code, http.StatusConflict)
}

func TestQuerySensorsPassesQueryParams(t *testing.T) {
	is := is.New(t)

	sensors := &registry.SensorRegistryMock{
		QueryFunc: func(ctx context.Context, params map[string][]string) (types.Collection[types.SensorConfig], error) {
			return types.Collection[types.SensorConfig]{Data: []types.SensorConfig{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/sensors?status=online&limit=10", nil)
	res := serve(t, req, sensors, nil, nil)

	is.Equal(res.Code, http.StatusOK)
	is.Equal(len(sensors.QueryCalls()), 1)
	is.Equal(sensors.QueryCalls()[0].Params["status"][0], "online")
}

func TestQueryAlerts(t *testing.T) {
	is := is.New(t)

	alertSvc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, params map[string][]string) (types.Collection[types.DataAlert], error) {
			return types.Collection[types.DataAlert]{
				Data:       []types.DataAlert{{ID: "alert-1", SensorID: "TEMP001", Type: types.AlertQualityLow}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts?severity=medium", nil)
	res := serve(t, req, nil, alertSvc, nil)

	is.Equal(res.Code, http.StatusOK)

	var collection types.Collection[types.DataAlert]
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &collection))
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].ID, "alert-1")
}

func TestQueryReadingsRangeQuery(t *testing.T) {
	is := is.New(t)

	readings := &ReadingStoreMock{
		QueryReadingsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorReading], error) {
			return types.Collection[types.SensorReading]{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/readings?sensor_id=TEMP001&from=2024-06-01T00:00:00Z&to=2024-06-02T00:00:00Z", nil)
	res := serve(t, req, nil, nil, readings)

	is.Equal(res.Code, http.StatusOK)
	is.Equal(len(readings.QueryReadingsCalls()), 1)

	c := &storage.Condition{}
	for _, f := range readings.QueryReadingsCalls()[0].Conditions {
		f(c)
	}
	is.Equal(c.SensorID, "TEMP001")
	is.Equal(c.TimeFrom, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res := serve(t, req, nil, nil, nil)

	is.Equal(res.Code, http.StatusNoContent)
}

func serve(t *testing.T, req *http.Request, sensors registry.SensorRegistry, alertSvc alerts.AlertService, readings ReadingStore) *httptest.ResponseRecorder {
	is := is.New(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logging.NewContextWithLogger(context.Background(), log)

	mux, err := RegisterHandlers(ctx, chi.NewRouter(), sensors, alertSvc, readings)
	is.NoErr(err)

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	return res
}
