package simulator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

type TrendMode string

const (
	TrendStable      TrendMode = "stable"
	TrendIncreasing  TrendMode = "increasing"
	TrendDecreasing  TrendMode = "decreasing"
	TrendFluctuating TrendMode = "fluctuating"
)

type Config struct {
	SensorPrefix string    `yaml:"sensorPrefix"`
	Seed         int64     `yaml:"seed"`
	Trend        TrendMode `yaml:"trend"`
	Latitude     float64   `yaml:"latitude"`
	Longitude    float64   `yaml:"longitude"`
	Altitude     float64   `yaml:"altitude"`

	// DayNightCycle drives the light level along a sinusoidal day/night
	// curve. When disabled, light jitters around a constant level.
	DayNightCycle bool `yaml:"dayNightCycle"`
}

func DefaultConfig() Config {
	return Config{
		SensorPrefix:  "sim",
		Seed:          1,
		Trend:         TrendStable,
		Latitude:      62.39,
		Longitude:     17.31,
		Altitude:      10,
		DayNightCycle: true,
	}
}

// Simulator produces a plausible stream of readings for one virtual
// device carrying a sensor per dimension. The same seed always yields
// the same sequence, which keeps downstream tests reproducible.
type Simulator struct {
	cfg Config
	rnd *rand.Rand

	temperature float64
	humidity    float64
	pressure    float64
	latitude    float64
	longitude   float64
	accuracy    float64

	tick int
}

func New(cfg Config) *Simulator {
	if cfg.SensorPrefix == "" {
		cfg.SensorPrefix = "sim"
	}

	return &Simulator{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(cfg.Seed)),

		temperature: 20.0,
		humidity:    50.0,
		// barometric formula flattened to a linear offset, good enough
		// below a few hundred meters
		pressure:  1013.25 - 0.12*cfg.Altitude,
		latitude:  cfg.Latitude,
		longitude: cfg.Longitude,
		accuracy:  5.0,
	}
}

// Tick advances the simulated state and returns one reading per
// dimension, all stamped with the given time.
func (s *Simulator) Tick(now time.Time) []types.SensorReading {
	s.tick++

	tempDelta := s.trendDelta() + s.noise(0.3)
	s.temperature = clamp(s.temperature+tempDelta, -50, 150)

	// warmer air holds more moisture, so relative humidity moves the
	// other way
	s.humidity = clamp(s.humidity-tempDelta*2.0+s.noise(1.0), 0, 100)

	s.pressure = clamp(s.pressure+s.noise(0.5), 0, 2000)

	var light float64
	if s.cfg.DayNightCycle {
		light = math.Max(0, daylightFactor(now)*10000+s.noise(200))
	} else {
		light = math.Max(0, 5000+s.noise(200))
	}

	vibration := math.Max(0, 2.0+2.0*math.Sin(float64(s.tick)/10.0)+s.noise(0.2))

	s.latitude += s.noise(0.0001)
	s.longitude += s.noise(0.0001)
	s.accuracy = clamp(s.accuracy+s.noise(0.5), 1, 50)

	accuracy := s.accuracy

	return []types.SensorReading{
		s.reading(types.SensorTypeTemperature, round(s.temperature), "C", now),
		s.reading(types.SensorTypeHumidity, round(s.humidity), "%", now),
		s.reading(types.SensorTypePressure, round(s.pressure), "hPa", now),
		s.reading(types.SensorTypeLight, round(light), "lx", now),
		s.reading(types.SensorTypeVibration, round(vibration), "mm/s", now),
		{
			SensorID:   s.sensorID(types.SensorTypeLocation),
			SensorType: types.SensorTypeLocation,
			Value:      types.NewPositionValue(s.latitude, s.longitude, &accuracy),
			Timestamp:  now,
		},
	}
}

func (s *Simulator) reading(st types.SensorType, value float64, unit string, now time.Time) types.SensorReading {
	return types.SensorReading{
		SensorID:   s.sensorID(st),
		SensorType: st,
		Value:      types.NewValue(value),
		Unit:       unit,
		Timestamp:  now,
		Metadata: map[string]any{
			"simulated": true,
		},
	}
}

func (s *Simulator) sensorID(st types.SensorType) string {
	return fmt.Sprintf("%s-%s", s.cfg.SensorPrefix, st)
}

func (s *Simulator) trendDelta() float64 {
	switch s.cfg.Trend {
	case TrendIncreasing:
		return 0.1
	case TrendDecreasing:
		return -0.1
	case TrendFluctuating:
		return 0.5 * math.Sin(float64(s.tick)/5.0)
	default:
		return 0
	}
}

func (s *Simulator) noise(amplitude float64) float64 {
	return (s.rnd.Float64() - 0.5) * 2 * amplitude
}

// daylightFactor follows a sine over the simulated clock, dark between
// 18:00 and 06:00.
func daylightFactor(now time.Time) float64 {
	hour := float64(now.Hour()) + float64(now.Minute())/60.0
	return math.Max(0, math.Sin((hour-6)/12*math.Pi))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
