package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type SensorType string

const (
	SensorTypeTemperature SensorType = "temperature"
	SensorTypeHumidity    SensorType = "humidity"
	SensorTypePressure    SensorType = "pressure"
	SensorTypeLight       SensorType = "light"
	SensorTypeVibration   SensorType = "vibration"
	SensorTypeLocation    SensorType = "location"
)

func (st SensorType) IsValid() bool {
	switch st {
	case SensorTypeTemperature, SensorTypeHumidity, SensorTypePressure,
		SensorTypeLight, SensorTypeVibration, SensorTypeLocation:
		return true
	}
	return false
}

type Coordinates struct {
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
}

// Value is a scalar for every sensor type except location, which
// carries a coordinate object instead.
type Value struct {
	Number   *float64
	Position *Coordinates
}

func NewValue(v float64) Value {
	return Value{Number: &v}
}

func NewPositionValue(lat, lon float64, accuracy *float64) Value {
	return Value{Position: &Coordinates{Latitude: lat, Longitude: lon, Accuracy: accuracy}}
}

func (v Value) IsZero() bool {
	return v.Number == nil && v.Position == nil
}

func (v Value) Float() float64 {
	if v.Number == nil {
		return 0
	}
	return *v.Number
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Position != nil {
		return json.Marshal(v.Position)
	}
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		v.Number = &n
		return nil
	}

	var c Coordinates
	if err := json.Unmarshal(b, &c); err == nil {
		v.Position = &c
		return nil
	}

	return fmt.Errorf("value is neither a number nor a coordinate object")
}

type SensorReading struct {
	SensorID   string         `json:"sensorID"`
	SensorType SensorType     `json:"sensorType"`
	Value      Value          `json:"value"`
	Unit       string         `json:"unit,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Location   *Coordinates   `json:"location,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type TransformedData struct {
	NormalizedValue float64  `json:"normalizedValue"`
	Timestamp       int64    `json:"timestamp"`
	SensorID        string   `json:"sensorID"`
	SensorType      string   `json:"sensorType"`
	SmoothedValue   *float64 `json:"smoothedValue,omitempty"`
}

type ProcessedData struct {
	Reading           SensorReading      `json:"reading"`
	DerivedMetrics    map[string]float64 `json:"derivedMetrics"`
	TransformedData   TransformedData    `json:"transformedData"`
	QualityScore      int                `json:"qualityScore"`
	ProcessedAt       time.Time          `json:"processedAt"`
	ProcessingVersion string             `json:"processingVersion"`
}

type AlertType string

const (
	AlertQualityLow        AlertType = "QUALITY_LOW"
	AlertAnomalyDetected   AlertType = "ANOMALY_DETECTED"
	AlertThresholdExceeded AlertType = "THRESHOLD_EXCEEDED"
	AlertSensorOffline     AlertType = "SENSOR_OFFLINE"
)

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

type DataAlert struct {
	ID        string          `json:"id"`
	SensorID  string          `json:"sensorID"`
	Type      AlertType       `json:"type"`
	Severity  AlertSeverity   `json:"severity"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type SensorStatus string

const (
	SensorStatusOnline  SensorStatus = "online"
	SensorStatusOffline SensorStatus = "offline"
)

type Threshold struct {
	Min *float64 `json:"min,omitempty" yaml:"min"`
	Max *float64 `json:"max,omitempty" yaml:"max"`
}

type SensorConfig struct {
	ID         string                   `json:"id" yaml:"id"`
	Type       SensorType               `json:"type" yaml:"type"`
	Location   *Coordinates             `json:"location,omitempty" yaml:"location"`
	Thresholds map[SensorType]Threshold `json:"thresholds,omitempty" yaml:"thresholds"`
	Metadata   map[string]any           `json:"metadata,omitempty" yaml:"metadata"`
	Status     SensorStatus             `json:"status" yaml:"status"`
	LastSeen   time.Time                `json:"lastSeen" yaml:"lastSeen"`
}

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}
