package quality

import (
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestFreshReadingWithMetadataScoresFull(t *testing.T) {
	is, s := testSetup(t, nil)

	r := reading()
	r.Metadata = map[string]any{"firmware": "1.0.4"}

	is.Equal(s.Score(r), 100)
}

func TestMissingMetadataCostsFivePoints(t *testing.T) {
	is, s := testSetup(t, nil)

	is.Equal(s.Score(reading()), 95)

	r := reading()
	r.Metadata = map[string]any{}
	is.Equal(s.Score(r), 95)
}

func TestStaleReadingCostsTwentyPoints(t *testing.T) {
	is, s := testSetup(t, nil)

	r := reading()
	r.Metadata = map[string]any{"k": "v"}
	r.Timestamp = now().Add(-6 * time.Minute)

	is.Equal(s.Score(r), 80)
}

func TestUnreasonableValueCostsTenPoints(t *testing.T) {
	predicate := &PredicateMock{
		IsReasonableFunc: func(r types.SensorReading) bool { return false },
	}
	is, s := testSetup(t, predicate)

	r := reading()
	r.Metadata = map[string]any{"k": "v"}

	is.Equal(s.Score(r), 90)
	is.Equal(len(predicate.IsReasonableCalls()), 1)
}

func TestDeductionsAccumulate(t *testing.T) {
	predicate := &PredicateMock{
		IsReasonableFunc: func(r types.SensorReading) bool { return false },
	}
	is, s := testSetup(t, predicate)

	r := reading()
	r.Timestamp = now().Add(-10 * time.Minute)

	is.Equal(s.Score(r), 65)
}

func TestScoringIsIdempotentAtTheSameInstant(t *testing.T) {
	is, s := testSetup(t, nil)

	r := reading()
	is.Equal(s.Score(r), s.Score(r))
}

func now() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-06-01T12:00:00Z")
	return t
}

func reading() types.SensorReading {
	return types.SensorReading{
		SensorID:   "TEMP001",
		SensorType: types.SensorTypeTemperature,
		Value:      types.NewValue(22.5),
		Timestamp:  now(),
	}
}

func testSetup(t *testing.T, p Predicate) (*is.I, *Scorer) {
	s := New(p)
	s.now = now
	return is.New(t), s
}
