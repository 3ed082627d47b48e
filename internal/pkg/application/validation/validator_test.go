package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestValidReadingPassesValidation(t *testing.T) {
	is, v := testSetup(t)

	err := v.Validate(reading("TEMP001", types.SensorTypeTemperature, 22.5))
	is.NoErr(err)
}

func TestTemperatureRange(t *testing.T) {
	is, v := testSetup(t)

	for _, val := range []float64{-50, 0, 150} {
		is.NoErr(v.Validate(reading("TEMP001", types.SensorTypeTemperature, val)))
	}

	for _, val := range []float64{-50.1, 151, 9000} {
		err := v.Validate(reading("TEMP001", types.SensorTypeTemperature, val))
		is.True(err != nil)
		is.True(strings.Contains(err.Error(), "temperature"))
	}
}

func TestHumidityRange(t *testing.T) {
	is, v := testSetup(t)

	err := v.Validate(reading("HUM001", types.SensorTypeHumidity, 200))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "humidity"))

	var verr *ValidationError
	is.True(errors.As(err, &verr))
}

func TestFutureTimestampIsRejected(t *testing.T) {
	is, v := testSetup(t)

	r := reading("TEMP001", types.SensorTypeTemperature, 20)
	r.Timestamp = now().Add(2 * time.Hour)

	err := v.Validate(r)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "future"))
}

func TestStaleTimestampIsRejected(t *testing.T) {
	is, v := testSetup(t)

	r := reading("TEMP001", types.SensorTypeTemperature, 20)
	r.Timestamp = now().Add(-31 * 24 * time.Hour)

	err := v.Validate(r)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "past"))
}

func TestSensorIDCharset(t *testing.T) {
	is, v := testSetup(t)

	is.NoErr(v.Validate(reading("sensor_01-A", types.SensorTypeLight, 100)))

	err := v.Validate(reading("bad sensor!", types.SensorTypeLight, 100))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "sensorID"))

	err = v.Validate(reading(strings.Repeat("a", 51), types.SensorTypeLight, 100))
	is.True(err != nil)
}

func TestMissingRequiredFields(t *testing.T) {
	is, v := testSetup(t)

	r := reading("TEMP001", types.SensorTypeTemperature, 20)
	r.SensorID = ""
	is.True(v.Validate(r) != nil)

	r = reading("TEMP001", types.SensorTypeTemperature, 20)
	r.Value = types.Value{}
	is.True(v.Validate(r) != nil)

	r = reading("TEMP001", types.SensorTypeTemperature, 20)
	r.Timestamp = time.Time{}
	is.True(v.Validate(r) != nil)
}

func TestLocationValue(t *testing.T) {
	is, v := testSetup(t)

	r := types.SensorReading{
		SensorID:   "GPS001",
		SensorType: types.SensorTypeLocation,
		Value:      types.NewPositionValue(57.7, 11.9, nil),
		Timestamp:  now(),
	}
	is.NoErr(v.Validate(r))

	r.Value = types.NewPositionValue(91, 11.9, nil)
	err := v.Validate(r)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "latitude"))

	r.Value = types.NewPositionValue(57.7, -181, nil)
	err = v.Validate(r)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "longitude"))

	r.Value = types.NewValue(42)
	is.True(v.Validate(r) != nil)
}

func TestOversizedMetadataIsRejected(t *testing.T) {
	is, v := testSetup(t)

	r := reading("TEMP001", types.SensorTypeTemperature, 20)
	r.Metadata = map[string]any{"blob": strings.Repeat("x", maxMetadataBytes)}

	err := v.Validate(r)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "metadata"))
}

func now() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-06-01T12:00:00Z")
	return t
}

func reading(sensorID string, st types.SensorType, value float64) types.SensorReading {
	return types.SensorReading{
		SensorID:   sensorID,
		SensorType: st,
		Value:      types.NewValue(value),
		Timestamp:  now(),
	}
}

func testSetup(t *testing.T) (*is.I, *Validator) {
	v := New()
	v.now = now
	return is.New(t), v
}
