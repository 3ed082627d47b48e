package alerts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/iot-ingest/pkg/types"
)

const qualityAlertThreshold = 70

// AnomalyDetector flags readings that look wrong even though they pass
// validation, such as sudden jumps or flatlined series. The default
// detector flags nothing; deployments plug in their own model.
//
//go:generate moq -rm -out anomalydetector_mock.go . AnomalyDetector
type AnomalyDetector interface {
	IsAnomaly(ctx context.Context, data types.ProcessedData) bool
}

type noAnomalies struct{}

func (noAnomalies) IsAnomaly(context.Context, types.ProcessedData) bool { return false }

type Evaluator struct {
	detector AnomalyDetector
}

func NewEvaluator(detector AnomalyDetector) *Evaluator {
	if detector == nil {
		detector = noAnomalies{}
	}
	return &Evaluator{detector: detector}
}

// Evaluate inspects a processed batch and returns the alerts it gives
// rise to. Threshold rules only apply to sensors with a registered
// configuration; unknown sensors never trigger threshold alerts.
func (e *Evaluator) Evaluate(ctx context.Context, batch []types.ProcessedData, configs map[string]types.SensorConfig) []types.DataAlert {
	alerts := make([]types.DataAlert, 0)

	for _, data := range batch {
		reading := data.Reading

		if data.QualityScore < qualityAlertThreshold {
			alerts = append(alerts, types.DataAlert{
				SensorID:  reading.SensorID,
				Type:      types.AlertQualityLow,
				Severity:  types.AlertSeverityMedium,
				Message:   fmt.Sprintf("quality score %d below threshold %d", data.QualityScore, qualityAlertThreshold),
				Timestamp: reading.Timestamp,
				Data:      alertData(data),
			})
		}

		if e.detector.IsAnomaly(ctx, data) {
			alerts = append(alerts, types.DataAlert{
				SensorID:  reading.SensorID,
				Type:      types.AlertAnomalyDetected,
				Severity:  types.AlertSeverityHigh,
				Message:   fmt.Sprintf("anomalous %s reading from %s", reading.SensorType, reading.SensorID),
				Timestamp: reading.Timestamp,
				Data:      alertData(data),
			})
		}

		if cfg, ok := configs[reading.SensorID]; ok {
			if msg, exceeded := checkThresholds(cfg, reading); exceeded {
				alerts = append(alerts, types.DataAlert{
					SensorID:  reading.SensorID,
					Type:      types.AlertThresholdExceeded,
					Severity:  types.AlertSeverityHigh,
					Message:   msg,
					Timestamp: reading.Timestamp,
					Data:      alertData(data),
				})
			}
		}
	}

	return alerts
}

func checkThresholds(cfg types.SensorConfig, reading types.SensorReading) (string, bool) {
	threshold, ok := cfg.Thresholds[reading.SensorType]
	if !ok || reading.Value.Number == nil {
		return "", false
	}

	value := reading.Value.Float()

	if threshold.Min != nil && value < *threshold.Min {
		return fmt.Sprintf("%s value %.2f below minimum %.2f by %.2f", reading.SensorType, value, *threshold.Min, *threshold.Min-value), true
	}
	if threshold.Max != nil && value > *threshold.Max {
		return fmt.Sprintf("%s value %.2f above maximum %.2f by %.2f", reading.SensorType, value, *threshold.Max, value-*threshold.Max), true
	}

	return "", false
}

func alertData(data types.ProcessedData) json.RawMessage {
	b, _ := json.Marshal(data)
	return b
}
