package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.DataAlert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":    alert.ID,
		"sensor_id":   alert.SensorID,
		"type":        string(alert.Type),
		"severity":    string(alert.Severity),
		"message":     alert.Message,
		"observed_at": alert.Timestamp.UTC(),
		"data":        nil,
	}
	if len(alert.Data) > 0 {
		args["data"] = string(alert.Data)
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, sensor_id, type, severity, message, observed_at, data)
		VALUES (@alert_id, @sensor_id, @type, @severity, @message, @observed_at, @data)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.DataAlert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT alert_id, sensor_id, type, severity, message, observed_at, data
		FROM alerts
		WHERE %s
	`, condition.Where("observed_at"))

	var alert types.DataAlert
	var data *json.RawMessage

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).
		Scan(&alert.ID, &alert.SensorID, (*string)(&alert.Type), (*string)(&alert.Severity), &alert.Message, &alert.Timestamp, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DataAlert{}, ErrNoRows
		}
		return types.DataAlert{}, err
	}

	if data != nil {
		alert.Data = *data
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.DataAlert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT alert_id, sensor_id, type, severity, message, observed_at, data, count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, condition.Where("observed_at"), condition.SortBy("observed_at"), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.DataAlert]{}, err
	}
	defer rows.Close()

	alerts := make([]types.DataAlert, 0)
	var count int64

	for rows.Next() {
		var alert types.DataAlert
		var data *json.RawMessage

		err := rows.Scan(&alert.ID, &alert.SensorID, (*string)(&alert.Type), (*string)(&alert.Severity), &alert.Message, &alert.Timestamp, &data, &count)
		if err != nil {
			return types.Collection[types.DataAlert]{}, err
		}

		if data != nil {
			alert.Data = *data
		}

		alerts = append(alerts, alert)
	}

	return types.Collection[types.DataAlert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
