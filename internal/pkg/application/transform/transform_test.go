package transform

import (
	"math"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestTemperatureDerivation(t *testing.T) {
	is, e := testSetup(t)

	pd, err := e.Process(reading(types.SensorTypeTemperature, 22.5))
	is.NoErr(err)

	is.Equal(pd.DerivedMetrics["celsius"], 22.5)
	is.True(almostEqual(pd.DerivedMetrics["fahrenheit"], 72.5))
	is.True(almostEqual(pd.DerivedMetrics["kelvin"], 295.65))
}

func TestCelsiusRoundTrip(t *testing.T) {
	is, e := testSetup(t)

	for _, v := range []float64{-50, -17.2, 0, 22.5, 150} {
		pd, err := e.Process(reading(types.SensorTypeTemperature, v))
		is.NoErr(err)
		is.Equal(pd.DerivedMetrics["celsius"], v)
	}
}

func TestHumidityDerivation(t *testing.T) {
	is, e := testSetup(t)

	pd, err := e.Process(reading(types.SensorTypeHumidity, 60))
	is.NoErr(err)

	is.Equal(pd.DerivedMetrics["relativeHumidity"], 60.0)

	// Magnus approximation at 60% RH and the assumed 20 °C ambient
	is.True(math.Abs(pd.DerivedMetrics["dewPoint"]-12.0) < 0.1)
}

func TestPressureDerivation(t *testing.T) {
	is, e := testSetup(t)

	pd, err := e.Process(reading(types.SensorTypePressure, 101325))
	is.NoErr(err)

	is.Equal(pd.DerivedMetrics["pascal"], 101325.0)
	is.True(almostEqual(pd.DerivedMetrics["bar"], 1.01325))
	is.True(almostEqual(pd.DerivedMetrics["atmosphere"], 1.0))
}

func TestLocationPassthrough(t *testing.T) {
	is, e := testSetup(t)

	accuracy := 4.2
	r := types.SensorReading{
		SensorID:   "GPS001",
		SensorType: types.SensorTypeLocation,
		Value:      types.NewPositionValue(57.7, 11.9, &accuracy),
		Timestamp:  ts(),
	}

	pd, err := e.Process(r)
	is.NoErr(err)

	is.Equal(pd.DerivedMetrics["latitude"], 57.7)
	is.Equal(pd.DerivedMetrics["longitude"], 11.9)
	is.Equal(pd.DerivedMetrics["accuracy"], 4.2)
}

func TestNormalization(t *testing.T) {
	is, e := testSetup(t)

	pd, _ := e.Process(reading(types.SensorTypeTemperature, 50))
	is.Equal(pd.TransformedData.NormalizedValue, 0.5)

	pd, _ = e.Process(reading(types.SensorTypeHumidity, 25))
	is.Equal(pd.TransformedData.NormalizedValue, 0.25)

	pd, _ = e.Process(reading(types.SensorTypePressure, 500))
	is.Equal(pd.TransformedData.NormalizedValue, 0.25)

	pd, _ = e.Process(reading(types.SensorTypeLight, 123))
	is.Equal(pd.TransformedData.NormalizedValue, 123.0)
}

func TestTransformedEnvelope(t *testing.T) {
	is, e := testSetup(t)

	r := reading(types.SensorTypeTemperature, 20)
	r.SensorID = "temp001"

	pd, err := e.Process(r)
	is.NoErr(err)

	is.Equal(pd.TransformedData.SensorID, "TEMP001")
	is.Equal(pd.TransformedData.SensorType, "temperature")
	is.Equal(pd.TransformedData.Timestamp, r.Timestamp.UnixMilli())
	is.True(pd.TransformedData.SmoothedValue != nil)
	is.Equal(*pd.TransformedData.SmoothedValue, 20.0)
	is.Equal(pd.ProcessingVersion, ProcessingVersion)
}

func TestProcessedAtNeverPrecedesReading(t *testing.T) {
	is, e := testSetup(t)

	r := reading(types.SensorTypeTemperature, 20)
	r.Timestamp = ts().Add(30 * time.Minute)

	pd, err := e.Process(r)
	is.NoErr(err)
	is.True(!pd.ProcessedAt.Before(r.Timestamp))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ts() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-06-01T12:00:00Z")
	return t
}

func reading(st types.SensorType, v float64) types.SensorReading {
	return types.SensorReading{
		SensorID:   "TEMP001",
		SensorType: st,
		Value:      types.NewValue(v),
		Timestamp:  ts(),
	}
}

func testSetup(t *testing.T) (*is.I, *Engine) {
	e := New()
	e.now = ts
	return is.New(t), e
}
