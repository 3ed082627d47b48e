package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

const (
	maxMetadataBytes = 1 << 20

	maxClockDrift = 1 * time.Hour
	maxReadingAge = 30 * 24 * time.Hour
)

var sensorIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)

// ValidationError signals that a single reading was rejected before
// entering the pipeline. The reason is specific enough for callers to
// distinguish bad input from system failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type Validator struct {
	now func() time.Time
}

func New() *Validator {
	return &Validator{now: time.Now}
}

// Validate checks a single reading for structural and domain range
// correctness, short-circuiting on the first failure. It has no side
// effects and does not mutate its input.
func (v *Validator) Validate(r types.SensorReading) error {
	if r.SensorID == "" {
		return invalid("sensorID is required")
	}
	if r.SensorType == "" {
		return invalid("sensorType is required")
	}
	if r.Value.IsZero() {
		return invalid("value is required")
	}
	if r.Timestamp.IsZero() {
		return invalid("timestamp is required")
	}

	if !sensorIDPattern.MatchString(r.SensorID) {
		return invalid("sensorID %q must match [a-zA-Z0-9_-] and be at most 50 characters", r.SensorID)
	}

	now := v.now()
	if r.Timestamp.After(now.Add(maxClockDrift)) {
		return invalid("timestamp %s is more than 1 hour in the future", r.Timestamp.Format(time.RFC3339))
	}
	if r.Timestamp.Before(now.Add(-maxReadingAge)) {
		return invalid("timestamp %s is more than 30 days in the past", r.Timestamp.Format(time.RFC3339))
	}

	if err := validateValue(r); err != nil {
		return err
	}

	if r.Metadata != nil {
		b, err := json.Marshal(r.Metadata)
		if err != nil {
			return invalid("metadata is not serializable: %s", err.Error())
		}
		if len(b) > maxMetadataBytes {
			return invalid("metadata exceeds maximum serialized size of 1 MiB")
		}
	}

	return nil
}

func validateValue(r types.SensorReading) error {
	if r.SensorType == types.SensorTypeLocation {
		pos := r.Value.Position
		if pos == nil {
			return invalid("location value must be an object with latitude and longitude")
		}
		if pos.Latitude < -90 || pos.Latitude > 90 {
			return invalid("location latitude %g is out of range [-90, 90]", pos.Latitude)
		}
		if pos.Longitude < -180 || pos.Longitude > 180 {
			return invalid("location longitude %g is out of range [-180, 180]", pos.Longitude)
		}
		return nil
	}

	if r.Value.Number == nil {
		return invalid("value must be numeric for sensor type %s", r.SensorType)
	}

	val := *r.Value.Number

	switch r.SensorType {
	case types.SensorTypeTemperature:
		if val < -50 || val > 150 {
			return invalid("temperature value %g is out of range [-50, 150]", val)
		}
	case types.SensorTypeHumidity:
		if val < 0 || val > 100 {
			return invalid("humidity value %g is out of range [0, 100]", val)
		}
	case types.SensorTypePressure:
		if val < 0 || val > 2000 {
			return invalid("pressure value %g is out of range [0, 2000]", val)
		}
	case types.SensorTypeLight:
		if val < 0 {
			return invalid("light value %g must not be negative", val)
		}
	case types.SensorTypeVibration:
		if val < 0 {
			return invalid("vibration value %g must not be negative", val)
		}
	default:
		return invalid("unknown sensor type %s", r.SensorType)
	}

	return nil
}
