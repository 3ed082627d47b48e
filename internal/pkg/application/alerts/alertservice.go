package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Add(ctx context.Context, alert types.DataAlert) error
	GetByID(ctx context.Context, alertID string) (types.DataAlert, error)
	Query(ctx context.Context, params map[string][]string) (types.Collection[types.DataAlert], error)
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlert(ctx context.Context, alert types.DataAlert) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.DataAlert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DataAlert], error)
}

type alertSvc struct {
	storage   AlertStorage
	messenger messaging.MsgContext
}

func New(s AlertStorage, m messaging.MsgContext) AlertService {
	return &alertSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc *alertSvc) Add(ctx context.Context, alert types.DataAlert) error {
	if alert.SensorID == "" {
		return fmt.Errorf("no sensorID is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.Timestamp,
	})
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string) (types.DataAlert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.DataAlert{}, ErrAlertNotFound
		}
		return types.DataAlert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) Query(ctx context.Context, params map[string][]string) (types.Collection[types.DataAlert], error) {
	return svc.storage.QueryAlerts(ctx, storage.MapToConditions(params)...)
}
