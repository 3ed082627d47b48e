package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddReadings(ctx context.Context, readings []types.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, r := range readings {
		value, _ := json.Marshal(r.Value)
		metadata, _ := json.Marshal(r.Metadata)

		args := pgx.NamedArgs{
			"time":        r.Timestamp.UTC(),
			"sensor_id":   r.SensorID,
			"type":        string(r.SensorType),
			"value":       string(value),
			"unit":        r.Unit,
			"metadata":    string(metadata),
			"lat":         0.0,
			"lon":         0.0,
		}
		if r.Location != nil {
			args["lat"] = r.Location.Latitude
			args["lon"] = r.Location.Longitude
		}

		batch.Queue(`
			INSERT INTO readings (time, sensor_id, type, value, unit, location, metadata)
			VALUES (@time, @sensor_id, @type, @value, @unit, point(@lon,@lat), @metadata)
		`, args)
	}

	err := s.pool.SendBatch(ctx, batch).Close()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) AddProcessed(ctx context.Context, processed []types.ProcessedData) error {
	if len(processed) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, pd := range processed {
		reading, _ := json.Marshal(pd.Reading)
		derived, _ := json.Marshal(pd.DerivedMetrics)
		transformed, _ := json.Marshal(pd.TransformedData)

		batch.Queue(`
			INSERT INTO processed_readings (time, sensor_id, type, quality_score, version, reading, derived, transformed)
			VALUES (@time, @sensor_id, @type, @quality_score, @version, @reading, @derived, @transformed)
		`, pgx.NamedArgs{
			"time":          pd.ProcessedAt.UTC(),
			"sensor_id":     pd.Reading.SensorID,
			"type":          string(pd.Reading.SensorType),
			"quality_score": pd.QualityScore,
			"version":       pd.ProcessingVersion,
			"reading":       string(reading),
			"derived":       string(derived),
			"transformed":   string(transformed),
		})
	}

	err := s.pool.SendBatch(ctx, batch).Close()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) QueryReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.SensorReading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT time, sensor_id, type, value, unit, metadata, count(*) OVER () AS count
		FROM readings
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, condition.Where("time"), condition.SortBy("time"), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.SensorReading]{}, err
	}
	defer rows.Close()

	readings := make([]types.SensorReading, 0)
	var count int64

	for rows.Next() {
		var r types.SensorReading
		var value, metadata json.RawMessage
		var unit *string

		err := rows.Scan(&r.Timestamp, &r.SensorID, (*string)(&r.SensorType), &value, &unit, &metadata, &count)
		if err != nil {
			return types.Collection[types.SensorReading]{}, err
		}

		var errs []error
		errs = append(errs, json.Unmarshal(value, &r.Value))
		if len(metadata) > 0 && string(metadata) != "null" {
			errs = append(errs, json.Unmarshal(metadata, &r.Metadata))
		}
		if err := errors.Join(errs...); err != nil {
			return types.Collection[types.SensorReading]{}, err
		}

		if unit != nil {
			r.Unit = *unit
		}

		readings = append(readings, r)
	}

	return types.Collection[types.SensorReading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) QueryProcessed(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ProcessedData], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT time, quality_score, version, reading, derived, transformed, count(*) OVER () AS count
		FROM processed_readings
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, condition.Where("time"), condition.SortBy("time"), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ProcessedData]{}, err
	}
	defer rows.Close()

	processed := make([]types.ProcessedData, 0)
	var count int64

	for rows.Next() {
		var pd types.ProcessedData
		var reading, derived, transformed json.RawMessage

		err := rows.Scan(&pd.ProcessedAt, &pd.QualityScore, &pd.ProcessingVersion, &reading, &derived, &transformed, &count)
		if err != nil {
			return types.Collection[types.ProcessedData]{}, err
		}

		err = errors.Join(
			json.Unmarshal(reading, &pd.Reading),
			json.Unmarshal(derived, &pd.DerivedMetrics),
			json.Unmarshal(transformed, &pd.TransformedData),
		)
		if err != nil {
			return types.Collection[types.ProcessedData]{}, err
		}

		processed = append(processed, pd)
	}

	return types.Collection[types.ProcessedData]{
		Data:       processed,
		Count:      uint64(len(processed)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
