package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/pkg/types"

	"gopkg.in/yaml.v2"
)

var ErrSensorNotFound = fmt.Errorf("sensor not found")
var ErrSensorAlreadyExists = fmt.Errorf("sensor already exists")

// SensorRegistry tracks the configuration and liveness of every known
// sensor. Entries are created on first registration or observation and
// are never deleted here; deregistration is an administrative action
// owned elsewhere.
//
//go:generate moq -rm -out registry_mock.go . SensorRegistry
type SensorRegistry interface {
	Register(ctx context.Context, cfg types.SensorConfig) error
	Get(ctx context.Context, sensorID string) (types.SensorConfig, error)
	Query(ctx context.Context, params map[string][]string) (types.Collection[types.SensorConfig], error)

	// Observe marks a sensor online and moves its lastSeen forward. An
	// unknown sensor is registered on the spot with defaults.
	Observe(ctx context.Context, sensorID string, sensorType types.SensorType, at time.Time) error
	SetOffline(ctx context.Context, sensorID string, at time.Time) error
	OnlineSensors(ctx context.Context) (types.Collection[types.SensorConfig], error)
}

//go:generate moq -rm -out sensorstorage_mock.go . SensorStorage
type SensorStorage interface {
	AddSensor(ctx context.Context, cfg types.SensorConfig) error
	UpdateSensor(ctx context.Context, cfg types.SensorConfig) error
	GetSensor(ctx context.Context, conditions ...storage.ConditionFunc) (types.SensorConfig, error)
	QuerySensors(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorConfig], error)
	SetSensorStatus(ctx context.Context, sensorID string, status types.SensorStatus, lastSeen time.Time) error
}

type service struct {
	storage SensorStorage
}

func New(s SensorStorage) SensorRegistry {
	return &service{storage: s}
}

func (s *service) Register(ctx context.Context, cfg types.SensorConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("sensor id is required")
	}
	if !cfg.Type.IsValid() {
		return fmt.Errorf("unknown sensor type %s", cfg.Type)
	}
	if cfg.Status == "" {
		cfg.Status = types.SensorStatusOffline
	}

	_, err := s.storage.GetSensor(ctx, storage.WithSensorID(cfg.ID))
	if err == nil {
		return ErrSensorAlreadyExists
	}
	if !errors.Is(err, storage.ErrNoRows) {
		return err
	}

	return s.storage.AddSensor(ctx, cfg)
}

func (s *service) Get(ctx context.Context, sensorID string) (types.SensorConfig, error) {
	cfg, err := s.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.SensorConfig{}, ErrSensorNotFound
		}
		return types.SensorConfig{}, err
	}

	return cfg, nil
}

func (s *service) Query(ctx context.Context, params map[string][]string) (types.Collection[types.SensorConfig], error) {
	return s.storage.QuerySensors(ctx, storage.MapToConditions(params)...)
}

func (s *service) Observe(ctx context.Context, sensorID string, sensorType types.SensorType, at time.Time) error {
	_, err := s.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if errors.Is(err, storage.ErrNoRows) {
		return s.storage.AddSensor(ctx, types.SensorConfig{
			ID:       sensorID,
			Type:     sensorType,
			Status:   types.SensorStatusOnline,
			LastSeen: at,
		})
	}
	if err != nil {
		return err
	}

	return s.storage.SetSensorStatus(ctx, sensorID, types.SensorStatusOnline, at)
}

func (s *service) SetOffline(ctx context.Context, sensorID string, at time.Time) error {
	cfg, err := s.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSensorNotFound
		}
		return err
	}

	// lastSeen reflects the last observation, not the offline sweep
	return s.storage.SetSensorStatus(ctx, sensorID, types.SensorStatusOffline, cfg.LastSeen)
}

func (s *service) OnlineSensors(ctx context.Context) (types.Collection[types.SensorConfig], error) {
	return s.storage.QuerySensors(ctx, storage.WithStatus(string(types.SensorStatusOnline)))
}

type seedFile struct {
	Sensors []types.SensorConfig `yaml:"sensors"`
}

// Seed registers sensors from a YAML file, typically per-sensor
// threshold configuration provided at deploy time. Already registered
// sensors are updated in place.
func Seed(ctx context.Context, s SensorStorage, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	file := seedFile{}
	err = yaml.Unmarshal(b, &file)
	if err != nil {
		return err
	}

	for _, cfg := range file.Sensors {
		if cfg.ID == "" || !cfg.Type.IsValid() {
			return fmt.Errorf("invalid seed entry %q of type %q", cfg.ID, cfg.Type)
		}
		if cfg.Status == "" {
			cfg.Status = types.SensorStatusOffline
		}

		_, err := s.GetSensor(ctx, storage.WithSensorID(cfg.ID))
		if errors.Is(err, storage.ErrNoRows) {
			err = s.AddSensor(ctx, cfg)
		} else if err == nil {
			err = s.UpdateSensor(ctx, cfg)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
