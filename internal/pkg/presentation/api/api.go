package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-ingest/api")

// ReadingStore is the query-side view of the persistence layer, used
// by the read endpoints only.
//
//go:generate moq -rm -out readingstore_mock.go . ReadingStore
type ReadingStore interface {
	QueryReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorReading], error)
	QueryProcessed(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ProcessedData], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, sensors registry.SensorRegistry, alertSvc alerts.AlertService, readings ReadingStore) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/sensors", func(r chi.Router) {
			r.Get("/", querySensorsHandler(log, sensors))
			r.Get("/{sensorID}", getSensorHandler(log, sensors))
			r.Post("/", registerSensorHandler(log, sensors))
		})

		r.Get("/alerts", queryAlertsHandler(log, alertSvc))
		r.Get("/alerts/{alertID}", getAlertHandler(log, alertSvc))

		r.Route("/readings", func(r chi.Router) {
			r.Get("/", queryReadingsHandler(log, readings))
			r.Get("/processed", queryProcessedHandler(log, readings))
		})
	})

	return router, nil
}

func registerSensorHandler(log *slog.Logger, sensors registry.SensorRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "register-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var cfg types.SensorConfig
		err = json.Unmarshal(body, &cfg)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = sensors.Register(ctx, cfg)
		if err != nil {
			if errors.Is(err, registry.ErrSensorAlreadyExists) {
				requestLogger.Debug("sensor already exists", "sensor_id", cfg.ID)
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to register sensor", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
	}
}

func querySensorsHandler(log *slog.Logger, sensors registry.SensorRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := sensors.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch sensors", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, collection)
	}
}

func getSensorHandler(log *slog.Logger, sensors registry.SensorRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		if sensorID != "" {
			requestLogger = requestLogger.With(slog.String("sensor_id", sensorID))
		}

		cfg, err := sensors.Get(ctx, sensorID)
		if errors.Is(err, registry.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch sensor", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, cfg)
	}
}

func queryAlertsHandler(log *slog.Logger, alertSvc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := alertSvc.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, collection)
	}
}

func getAlertHandler(log *slog.Logger, alertSvc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		alert, err := alertSvc.GetByID(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, alert)
	}
}

func queryReadingsHandler(log *slog.Logger, readings ReadingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := readings.QueryReadings(ctx, storage.MapToConditions(r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, collection)
	}
}

func queryProcessedHandler(log *slog.Logger, readings ReadingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-processed-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := readings.QueryProcessed(ctx, storage.MapToConditions(r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch processed readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, collection)
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
