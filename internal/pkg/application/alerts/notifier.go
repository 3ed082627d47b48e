package alerts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/iot-ingest/pkg/types"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const alertEventType string = "iot.dataAlert"

// EventSender pushes alerts to external subscribers as cloud events.
// Subscribers are configured at deploy time; with no configuration the
// sender is a no-op.
type EventSender interface {
	Send(ctx context.Context, alert types.DataAlert) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

func NewEventSender(cfg *NotificationConfig) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = n.Subscribers
		}
	}

	return e
}

func (e *eventSender) Send(ctx context.Context, alert types.DataAlert) error {
	if s, ok := e.subscribers[alertEventType]; !ok || len(s) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", alert.SensorID, alert.Timestamp.Unix()))
	event.SetTime(alert.Timestamp)
	event.SetSource("github.com/diwise/iot-ingest")
	event.SetType(alertEventType)

	err = event.SetData(cloudevents.ApplicationJSON, alert)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range e.subscribers[alertEventType] {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error("failed to send event", "endpoint", s.Endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type NotificationConfig struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadNotificationConfig(data io.Reader) (*NotificationConfig, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := NotificationConfig{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
