package alerts

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

type senderFake struct {
	sent []types.DataAlert
}

func (s *senderFake) Send(ctx context.Context, alert types.DataAlert) error {
	s.sent = append(s.sent, alert)
	return nil
}

func TestAlertCreatedHandlerForwardsToSender(t *testing.T) {
	is := is.New(t)

	sender := &senderFake{}
	handler := NewAlertCreatedHandler(sender)

	event := AlertCreated{
		Alert: types.DataAlert{
			ID:       "alert-1",
			SensorID: "TEMP001",
			Type:     types.AlertThresholdExceeded,
			Severity: types.AlertSeverityHigh,
		},
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(&event)
			return b
		},
	}
	handler(context.Background(), msg, slog.Default())

	is.Equal(len(sender.sent), 1)
	is.Equal(sender.sent[0].ID, "alert-1")
}

func TestAlertCreatedHandlerIgnoresBadPayloads(t *testing.T) {
	is := is.New(t)

	sender := &senderFake{}
	handler := NewAlertCreatedHandler(sender)

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte { return []byte("not json") },
	}
	handler(context.Background(), msg, slog.Default())

	is.Equal(len(sender.sent), 0)
}
