package simulator

import (
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/matryer/is"
)

func TestTickProducesOneReadingPerDimension(t *testing.T) {
	is := is.New(t)

	s := New(DefaultConfig())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	readings := s.Tick(now)
	is.Equal(len(readings), 6)

	seen := map[types.SensorType]bool{}
	for _, r := range readings {
		is.Equal(r.Timestamp, now)
		seen[r.SensorType] = true
	}
	is.Equal(len(seen), 6)
}

func TestSameSeedYieldsSameSequence(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	cfg.Seed = 42
	a, b := New(cfg), New(cfg)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		ra, rb := a.Tick(now), b.Tick(now)
		for j := range ra {
			is.Equal(ra[j], rb[j])
		}
		now = now.Add(time.Second)
	}
}

func TestLightIsDarkAtNight(t *testing.T) {
	is := is.New(t)

	s := New(DefaultConfig())
	readings := s.Tick(time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC))

	for _, r := range readings {
		if r.SensorType == types.SensorTypeLight {
			is.True(r.Value.Float() < 500)
		}
	}
}

func TestLightJittersWhenDayNightCycleIsDisabled(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	cfg.DayNightCycle = false
	s := New(cfg)

	// 02:00 would be pitch dark with the cycle enabled
	readings := s.Tick(time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC))

	for _, r := range readings {
		if r.SensorType == types.SensorTypeLight {
			is.True(r.Value.Float() >= 4800 && r.Value.Float() <= 5200)
		}
	}
}

func TestHumidityMovesAgainstTemperature(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	cfg.Trend = TrendIncreasing
	cfg.Seed = 7
	s := New(cfg)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var firstTemp, firstHum, lastTemp, lastHum float64
	for i := 0; i < 200; i++ {
		readings := s.Tick(now.Add(time.Duration(i) * time.Second))
		for _, r := range readings {
			switch r.SensorType {
			case types.SensorTypeTemperature:
				if i == 0 {
					firstTemp = r.Value.Float()
				}
				lastTemp = r.Value.Float()
			case types.SensorTypeHumidity:
				if i == 0 {
					firstHum = r.Value.Float()
				}
				lastHum = r.Value.Float()
			}
		}
	}

	is.True(lastTemp > firstTemp)
	is.True(lastHum < firstHum)
}

func TestReadingsPassValidationRanges(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	cfg.Trend = TrendFluctuating
	s := New(cfg)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		for _, r := range s.Tick(now.Add(time.Duration(i) * time.Minute)) {
			switch r.SensorType {
			case types.SensorTypeTemperature:
				is.True(r.Value.Float() >= -50 && r.Value.Float() <= 150)
			case types.SensorTypeHumidity:
				is.True(r.Value.Float() >= 0 && r.Value.Float() <= 100)
			case types.SensorTypePressure:
				is.True(r.Value.Float() >= 0 && r.Value.Float() <= 2000)
			case types.SensorTypeLight, types.SensorTypeVibration:
				is.True(r.Value.Float() >= 0)
			case types.SensorTypeLocation:
				is.True(r.Value.Position != nil)
			}
		}
	}
}
