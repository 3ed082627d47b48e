package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (s *Storage) AddSensor(ctx context.Context, cfg types.SensorConfig) error {
	if cfg.ID == "" {
		return ErrNoID
	}

	thresholds, _ := json.Marshal(cfg.Thresholds)
	metadata, _ := json.Marshal(cfg.Metadata)

	args := pgx.NamedArgs{
		"sensor_id":  cfg.ID,
		"type":       string(cfg.Type),
		"status":     string(cfg.Status),
		"thresholds": string(thresholds),
		"metadata":   string(metadata),
		"last_seen":  lastSeenOrNil(cfg.LastSeen),
		"lat":        0.0,
		"lon":        0.0,
	}
	if cfg.Location != nil {
		args["lat"] = cfg.Location.Latitude
		args["lon"] = cfg.Location.Longitude
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sensors (sensor_id, type, status, location, thresholds, metadata, last_seen)
		VALUES (@sensor_id, @type, @status, point(@lon,@lat), @thresholds, @metadata, @last_seen)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateSensor(ctx context.Context, cfg types.SensorConfig) error {
	thresholds, _ := json.Marshal(cfg.Thresholds)
	metadata, _ := json.Marshal(cfg.Metadata)

	args := pgx.NamedArgs{
		"sensor_id":  cfg.ID,
		"type":       string(cfg.Type),
		"thresholds": string(thresholds),
		"metadata":   string(metadata),
		"lat":        0.0,
		"lon":        0.0,
	}
	if cfg.Location != nil {
		args["lat"] = cfg.Location.Latitude
		args["lon"] = cfg.Location.Longitude
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET type = @type, location = point(@lon,@lat), thresholds = @thresholds, metadata = @metadata, modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) SetSensorStatus(ctx context.Context, sensorID string, status types.SensorStatus, lastSeen time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET status = @status, last_seen = @last_seen, modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, pgx.NamedArgs{
		"sensor_id": sensorID,
		"status":    string(status),
		"last_seen": lastSeenOrNil(lastSeen),
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetSensor(ctx context.Context, conditions ...ConditionFunc) (types.SensorConfig, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT sensor_id, type, status, location, thresholds, metadata, last_seen
		FROM sensors
		WHERE %s
	`, condition.Where("last_seen"))

	row := s.pool.QueryRow(ctx, query, condition.NamedArgs())

	cfg, err := scanSensor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.SensorConfig{}, ErrNoRows
		}
		return types.SensorConfig{}, err
	}

	return cfg, nil
}

func (s *Storage) QuerySensors(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.SensorConfig], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT sensor_id, type, status, location, thresholds, metadata, last_seen, count(*) OVER () AS count
		FROM sensors
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, condition.Where("last_seen"), condition.SortBy("sensor_id"), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.SensorConfig]{}, err
	}
	defer rows.Close()

	sensors := make([]types.SensorConfig, 0)
	var count int64

	for rows.Next() {
		cfg, err := scanSensorWithCount(rows, &count)
		if err != nil {
			return types.Collection[types.SensorConfig]{}, err
		}
		sensors = append(sensors, cfg)
	}

	return types.Collection[types.SensorConfig]{
		Data:       sensors,
		Count:      uint64(len(sensors)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func scanSensor(row pgx.Row) (types.SensorConfig, error) {
	var sensorID, sensorType, status string
	var location pgtype.Point
	var thresholds, metadata json.RawMessage
	var lastSeen *time.Time

	err := row.Scan(&sensorID, &sensorType, &status, &location, &thresholds, &metadata, &lastSeen)
	if err != nil {
		return types.SensorConfig{}, err
	}

	return assembleSensor(sensorID, sensorType, status, location, thresholds, metadata, lastSeen)
}

func scanSensorWithCount(row pgx.Row, count *int64) (types.SensorConfig, error) {
	var sensorID, sensorType, status string
	var location pgtype.Point
	var thresholds, metadata json.RawMessage
	var lastSeen *time.Time

	err := row.Scan(&sensorID, &sensorType, &status, &location, &thresholds, &metadata, &lastSeen, count)
	if err != nil {
		return types.SensorConfig{}, err
	}

	return assembleSensor(sensorID, sensorType, status, location, thresholds, metadata, lastSeen)
}

func assembleSensor(sensorID, sensorType, status string, location pgtype.Point, thresholds, metadata json.RawMessage, lastSeen *time.Time) (types.SensorConfig, error) {
	cfg := types.SensorConfig{
		ID:     sensorID,
		Type:   types.SensorType(sensorType),
		Status: types.SensorStatus(status),
	}

	var errs []error

	if len(thresholds) > 0 {
		errs = append(errs, json.Unmarshal(thresholds, &cfg.Thresholds))
	}
	if len(metadata) > 0 {
		errs = append(errs, json.Unmarshal(metadata, &cfg.Metadata))
	}
	if location.Valid {
		cfg.Location = &types.Coordinates{
			Latitude:  location.P.Y,
			Longitude: location.P.X,
		}
	}
	if lastSeen != nil {
		cfg.LastSeen = *lastSeen
	}

	return cfg, errors.Join(errs...)
}

func lastSeenOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
