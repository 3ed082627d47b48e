package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"log/slog"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/buffer"
	"github.com/diwise/iot-ingest/internal/pkg/application/quality"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/internal/pkg/application/transform"
	"github.com/diwise/iot-ingest/internal/pkg/application/validation"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-ingest/pipeline")

//go:generate moq -rm -out processedstore_mock.go . ProcessedStore
type ProcessedStore interface {
	AddReadings(ctx context.Context, readings []types.SensorReading) error
	AddProcessed(ctx context.Context, processed []types.ProcessedData) error
}

// ContentStore keeps raw batch payloads addressable by content id, so
// a batch can be fetched again for audit or replay.
//
//go:generate moq -rm -out contentstore_mock.go . ContentStore
type ContentStore interface {
	Store(ctx context.Context, payload []byte) (string, error)
}

//go:generate moq -rm -out ledger_mock.go . Ledger
type Ledger interface {
	Submit(ctx context.Context, batch []types.ProcessedData) (string, error)
}

type Pipeline struct {
	validator *validation.Validator
	engine    *transform.Engine
	scorer    *quality.Scorer
	evaluator *alerts.Evaluator

	registry  registry.SensorRegistry
	alertSvc  alerts.AlertService
	store     ProcessedStore
	contents  ContentStore
	ledger    Ledger
	messenger messaging.MsgContext

	buffer *buffer.Buffer
}

type Dependencies struct {
	Registry     registry.SensorRegistry
	AlertService alerts.AlertService
	Store        ProcessedStore
	ContentStore ContentStore
	Ledger       Ledger
	Messenger    messaging.MsgContext
	Detector     alerts.AnomalyDetector
	Predicate    quality.Predicate
}

func New(cfg buffer.Config, deps Dependencies) (*Pipeline, error) {
	p := &Pipeline{
		validator: validation.New(),
		engine:    transform.New(),
		scorer:    quality.New(deps.Predicate),
		evaluator: alerts.NewEvaluator(deps.Detector),
		registry:  deps.Registry,
		alertSvc:  deps.AlertService,
		store:     deps.Store,
		contents:  deps.ContentStore,
		ledger:    deps.Ledger,
		messenger: deps.Messenger,
	}

	b, err := buffer.New(cfg, p.processBatch)
	if err != nil {
		return nil, err
	}
	p.buffer = b

	return p, nil
}

func (p *Pipeline) Start(ctx context.Context) {
	p.buffer.Start(ctx)
}

func (p *Pipeline) Stop(ctx context.Context) {
	p.buffer.Stop(ctx)
	p.buffer.Flush(ctx)
}

// Ingest decodes and validates a raw reading and queues it for batch
// processing. Invalid payloads are rejected here and never reach the
// buffer.
func (p *Pipeline) Ingest(ctx context.Context, payload []byte) error {
	reading := types.SensorReading{}

	err := json.Unmarshal(payload, &reading)
	if err != nil {
		return fmt.Errorf("could not decode reading: %w", err)
	}

	err = p.validator.Validate(reading)
	if err != nil {
		return err
	}

	err = p.registry.Observe(ctx, reading.SensorID, reading.SensorType, reading.Timestamp)
	if err != nil {
		return fmt.Errorf("could not update sensor registry: %w", err)
	}

	p.buffer.Add(ctx, reading)

	return nil
}

// Flush forces any queued readings through the batch processing step.
func (p *Pipeline) Flush(ctx context.Context) {
	p.buffer.Flush(ctx)
}

func (p *Pipeline) processBatch(ctx context.Context, batch []types.SensorReading) error {
	log := logging.GetFromContext(ctx)

	processed := make([]types.ProcessedData, 0, len(batch))

	for _, reading := range batch {
		data, err := p.engine.Process(reading)
		if err != nil {
			log.Error("failed to process reading, skipping", "sensor_id", reading.SensorID, "err", err.Error())
			continue
		}

		data.QualityScore = p.scorer.Score(reading)
		processed = append(processed, data)
	}

	if len(processed) == 0 {
		return fmt.Errorf("no readings in batch of %d could be processed", len(batch))
	}

	configs := p.sensorConfigs(ctx, processed)

	for _, alert := range p.evaluator.Evaluate(ctx, processed, configs) {
		err := p.alertSvc.Add(ctx, alert)
		if err != nil {
			log.Error("could not create alert", "sensor_id", alert.SensorID, "err", err.Error())
		}
	}

	err := p.store.AddReadings(ctx, batch)
	if err != nil {
		return fmt.Errorf("could not store readings: %w", err)
	}

	err = p.store.AddProcessed(ctx, processed)
	if err != nil {
		return fmt.Errorf("could not store processed readings: %w", err)
	}

	b, err := json.Marshal(processed)
	if err != nil {
		log.Error("could not marshal batch contents, skipping content store", "err", err.Error())
	} else if cid, err := p.contents.Store(ctx, b); err != nil {
		log.Error("could not store batch contents", "err", err.Error())
	} else {
		log.Debug("stored batch contents", "cid", cid)
	}

	// ledger submission is fire and forget, failed submissions are the
	// ledger's concern to surface
	receipt, err := p.ledger.Submit(ctx, processed)
	if err != nil {
		log.Error("ledger submission failed", "batch_size", len(processed), "err", err.Error())
	} else {
		log.Debug("batch submitted to ledger", "receipt", receipt)
	}

	err = p.messenger.PublishOnTopic(ctx, &BatchProcessed{
		Count:     len(processed),
		Processed: processed,
	})
	if err != nil {
		log.Error("could not publish batch", "err", err.Error())
	}

	return nil
}

func (p *Pipeline) sensorConfigs(ctx context.Context, processed []types.ProcessedData) map[string]types.SensorConfig {
	log := logging.GetFromContext(ctx)
	configs := make(map[string]types.SensorConfig)

	sensorIDs := lo.Uniq(lo.Map(processed, func(d types.ProcessedData, _ int) string {
		return d.Reading.SensorID
	}))

	for _, sensorID := range sensorIDs {
		cfg, err := p.registry.Get(ctx, sensorID)
		if err != nil {
			if !errors.Is(err, registry.ErrSensorNotFound) {
				log.Error("could not fetch sensor config", "sensor_id", sensorID, "err", err.Error())
			}
			continue
		}

		configs[sensorID] = cfg
	}

	return configs
}

// NewSensorReadingTopicHandler ingests readings published on the
// message broker, as an alternative to the MQTT path.
func NewSensorReadingTopicHandler(p *Pipeline) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "sensor-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		err = p.Ingest(ctx, itm.Body())
		if err != nil {
			validationErr := &validation.ValidationError{}
			if errors.As(err, &validationErr) {
				log.Warn("rejected reading", "reason", validationErr.Reason)
				return
			}
			log.Error("failed to ingest reading", "err", err.Error())
		}
	}
}
