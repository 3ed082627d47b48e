package transform

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

// ProcessingVersion tags the derivation logic in effect and is stamped
// onto every processed reading.
const ProcessingVersion = "1.2.0"

// assumedAmbientC is the fixed ambient temperature used by the dew
// point derivation when a humidity reading arrives without a paired
// temperature observation. A known simplification, kept on purpose.
const assumedAmbientC = 20.0

type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// Process converts a validated reading into a ProcessedData envelope
// with derived metrics and a normalized representation. The quality
// score is left for the scorer to fill in. Processing is stateless, so
// readings within a batch can be processed in any order or in parallel.
func (e *Engine) Process(r types.SensorReading) (types.ProcessedData, error) {
	metrics, err := deriveMetrics(r)
	if err != nil {
		return types.ProcessedData{}, err
	}

	processedAt := e.now().UTC()
	if processedAt.Before(r.Timestamp) {
		// readings may carry timestamps up to an hour ahead of our
		// clock, but processedAt must never precede the reading
		processedAt = r.Timestamp
	}

	return types.ProcessedData{
		Reading:           r,
		DerivedMetrics:    metrics,
		TransformedData:   transformData(r),
		ProcessedAt:       processedAt,
		ProcessingVersion: ProcessingVersion,
	}, nil
}

func deriveMetrics(r types.SensorReading) (map[string]float64, error) {
	if r.SensorType == types.SensorTypeLocation {
		pos := r.Value.Position
		if pos == nil {
			return nil, fmt.Errorf("location reading %s carries no coordinates", r.SensorID)
		}
		m := map[string]float64{
			"latitude":  pos.Latitude,
			"longitude": pos.Longitude,
		}
		if pos.Accuracy != nil {
			m["accuracy"] = *pos.Accuracy
		}
		return m, nil
	}

	if r.Value.Number == nil {
		return nil, fmt.Errorf("reading %s of type %s carries no numeric value", r.SensorID, r.SensorType)
	}

	v := *r.Value.Number

	switch r.SensorType {
	case types.SensorTypeTemperature:
		return map[string]float64{
			"celsius":    v,
			"fahrenheit": v*9/5 + 32,
			"kelvin":     v + 273.15,
		}, nil
	case types.SensorTypeHumidity:
		return map[string]float64{
			"relativeHumidity": v,
			"dewPoint":         dewPoint(v, assumedAmbientC),
		}, nil
	case types.SensorTypePressure:
		return map[string]float64{
			"pascal":     v,
			"bar":        v / 100000,
			"atmosphere": v / 101325,
		}, nil
	default:
		return map[string]float64{}, nil
	}
}

// dewPoint approximates the dew point in °C from relative humidity and
// ambient temperature using the Magnus formula.
func dewPoint(relativeHumidity, ambientC float64) float64 {
	alpha := (17.27*ambientC)/(237.7+ambientC) + math.Log(relativeHumidity/100)
	return (237.7 * alpha) / (17.27 - alpha)
}

func transformData(r types.SensorReading) types.TransformedData {
	td := types.TransformedData{
		NormalizedValue: normalize(r),
		Timestamp:       r.Timestamp.UnixMilli(),
		SensorID:        strings.ToUpper(r.SensorID),
		SensorType:      strings.ToLower(string(r.SensorType)),
	}

	// temporal smoothing needs history this engine does not retain, so
	// the smoothed value is a placeholder equal to the raw value
	if r.SensorType == types.SensorTypeTemperature || r.SensorType == types.SensorTypeHumidity {
		v := r.Value.Float()
		td.SmoothedValue = &v
	}

	return td
}

// normalize maps a reading onto [0,1] using fixed domain bounds per
// sensor type. Types without fixed bounds pass through unchanged.
func normalize(r types.SensorReading) float64 {
	v := r.Value.Float()

	switch r.SensorType {
	case types.SensorTypeTemperature:
		return (v + 50) / 200
	case types.SensorTypeHumidity:
		return v / 100
	case types.SensorTypePressure:
		return v / 2000
	default:
		return v
	}
}
