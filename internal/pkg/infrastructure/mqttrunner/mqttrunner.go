package mqttrunner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/iot-ingest/internal/pkg/application/validation"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const DefaultTopicFilter = "sensors/+/+"

type Config struct {
	BrokerURL   string
	ClientID    string
	TopicFilter string
}

type IngestFunc func(ctx context.Context, payload []byte) error

// Runner subscribes to the sensor reading topics and feeds every
// payload into the ingest pipeline. Topics follow the pattern
// sensors/{sensorID}/{sensorType}; the payload carries the full
// reading, the topic segments are only used for logging.
type Runner struct {
	cfg    Config
	client mqtt.Client
	ingest IngestFunc
}

func New(cfg Config, ingest IngestFunc) *Runner {
	if cfg.TopicFilter == "" {
		cfg.TopicFilter = DefaultTopicFilter
	}

	return &Runner{cfg: cfg, ingest: ingest}
}

func (r *Runner) Start(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	opts := mqtt.NewClientOptions().AddBroker(r.cfg.BrokerURL).SetClientID(r.cfg.ClientID)
	r.client = mqtt.NewClient(opts)

	if token := r.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("could not connect to broker %s: %w", r.cfg.BrokerURL, token.Error())
	}

	handler := func(client mqtt.Client, msg mqtt.Message) {
		sensorID, sensorType, ok := parseTopic(msg.Topic())
		if !ok {
			log.Warn("message on unexpected topic", "topic", msg.Topic())
			return
		}

		err := r.ingest(ctx, msg.Payload())
		if err != nil {
			validationErr := &validation.ValidationError{}
			if errors.As(err, &validationErr) {
				log.Warn("rejected reading", "sensor_id", sensorID, "type", sensorType, "reason", validationErr.Reason)
				return
			}
			log.Error("failed to ingest reading", "sensor_id", sensorID, "err", err.Error())
			return
		}

		log.Debug("ingested reading", "sensor_id", sensorID, "type", sensorType)
	}

	if token := r.client.Subscribe(r.cfg.TopicFilter, 0, handler); token.Wait() && token.Error() != nil {
		return fmt.Errorf("could not subscribe to %s: %w", r.cfg.TopicFilter, token.Error())
	}

	log.Info("subscribed to sensor readings", "broker", r.cfg.BrokerURL, "topic", r.cfg.TopicFilter)

	return nil
}

func (r *Runner) Stop(ctx context.Context) {
	if r.client != nil && r.client.IsConnected() {
		r.client.Disconnect(250)
	}
}

func parseTopic(topic string) (sensorID, sensorType string, ok bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "sensors" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
